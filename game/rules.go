package game

import "gonum.org/v1/gonum/mat"

// Rules — canonical pairwise payoff matrices
//
// Description:
//
//	For each ordered pair of players (k, j), entry [a][b] of the pair's rule
//	matrix is the expected payoff to player k when k plays action a and j
//	plays action b. Only the three forward matrices A01, A02, A12 are
//	independent: swapping the players negates and transposes the matrix,
//	A_{jk} = −A_{kj}ᵀ (pairwise antisymmetry — the algebraic source of the
//	zero-sum invariant).
//
// Construction:
//
//	Matrices are derived from the rule rather than hard-coded:
//	  1. different actions resolve by cyclic dominance (R>S, S>P, P>R);
//	  2. equal actions resolve in favor of the player whose special action
//	     was played (player k's special action is action k);
//	  3. equal non-special actions draw (payoff 0).
//	The derived values equal the canonical literals
//	  A01 = [[1,−1,1],[1,−1,−1],[−1,1,0]]
//	  A02 = [[1,−1,1],[1,0,−1],[−1,1,−1]]
//	  A12 = [[0,−1,1],[1,1,−1],[−1,1,−1]]
//	which is asserted in tests.
//
// The matrices are process-wide constants: RuleMatrices builds all six
// orderings once at package init and Pair hands out shared read-only views.

// specialAction returns player k's special action (action index k).
func specialAction(k int) int { return k }

// beats reports whether action a beats action b under cyclic dominance:
// rock (0) beats scissors (2), scissors beats paper (1), paper beats rock.
func beats(a, b int) bool {
	return (a == 0 && b == 2) || (a == 2 && b == 1) || (a == 1 && b == 0)
}

// pairPayoff returns the expected payoff to player k when k plays action a
// and player j plays action b, for k != j.
func pairPayoff(k, j, a, b int) float64 {
	if a != b {
		if beats(a, b) {
			return 1
		}
		return -1
	}
	switch a {
	case specialAction(k):
		return 1
	case specialAction(j):
		return -1
	default:
		return 0
	}
}

// Rules holds the six ordered pairwise rule matrices.
type Rules struct {
	pairs [NumPlayers][NumPlayers]*mat.Dense
}

// rules is the package-wide immutable instance; built once, never mutated.
var rules = buildRules()

// buildRules constructs all six ordered pair matrices from pairPayoff.
// The reverse orderings are filled independently; antisymmetry
// (A_{jk} = −A_{kj}ᵀ) then follows from pairPayoff's symmetry and is
// verified by tests rather than assumed.
func buildRules() Rules {
	var r Rules
	for k := 0; k < NumPlayers; k++ {
		for j := 0; j < NumPlayers; j++ {
			if k == j {
				continue
			}
			m := mat.NewDense(NumActions, NumActions, nil)
			for a := 0; a < NumActions; a++ {
				for b := 0; b < NumActions; b++ {
					m.Set(a, b, pairPayoff(k, j, a, b))
				}
			}
			r.pairs[k][j] = m
		}
	}
	return r
}

// RuleMatrices returns the canonical rule set. The returned value shares the
// package-wide matrices; callers must treat them as read-only.
func RuleMatrices() Rules { return rules }

// Pair returns the rule matrix for ordered players (k, j): entry [a][b] is
// the expected payoff to k playing a against j playing b.
// Returns ErrPlayerOutOfRange for invalid or equal indices.
//
// Complexity: O(1).
func (r Rules) Pair(k, j int) (*mat.Dense, error) {
	if k < 0 || k >= NumPlayers || j < 0 || j >= NumPlayers || k == j {
		return nil, ErrPlayerOutOfRange
	}
	return r.pairs[k][j], nil
}
