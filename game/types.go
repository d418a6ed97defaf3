// Package game: domain types shared by the generator and the models.
// This file contains ONLY domain-facing types and their validation; errors
// live in errors.go and randomness policy in rng.go, per the package
// conventions.

package game

import "math"

const (
	// NumPlayers is the number of players in the game.
	NumPlayers = 3

	// NumActions is the number of actions available to each player
	// (rock, paper, scissors — indices 0, 1, 2).
	NumActions = 3

	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (row sums, zero-sum verification).
	DefaultEpsilon = 1e-9
)

// StrategyMatrix holds one probability distribution over actions per player:
// row k is player k's strategy. Rows must be non-negative and sum to 1.
// Values are immutable once generated (the type is a value array; callers
// receive copies).
type StrategyMatrix [NumPlayers][NumActions]float64

// Validate checks the structural invariants of a strategy matrix:
// all entries finite, all entries non-negative, every row summing to 1
// within DefaultEpsilon. Returns the first violated sentinel
// (ErrNaNInf before ErrNegativeEntry before ErrRowSum).
//
// Complexity: O(1) (fixed 3×3 scan).
func (m StrategyMatrix) Validate() error {
	for r := 0; r < NumPlayers; r++ {
		var sum float64
		for c := 0; c < NumActions; c++ {
			v := m[r][c]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
			if v < 0 {
				return ErrNegativeEntry
			}
			sum += v
		}
		if math.Abs(sum-1) > DefaultEpsilon {
			return ErrRowSum
		}
	}
	return nil
}

// PayoffProbability is the per-player probability of a +1 payoff.
// The defining invariant is that the corresponding expectations 2p−1
// sum to zero across players.
type PayoffProbability [NumPlayers]float64

// Expectations converts win probabilities to expected payoffs E(y_k) = 2p_k − 1.
func (p PayoffProbability) Expectations() [NumPlayers]float64 {
	var e [NumPlayers]float64
	for k := 0; k < NumPlayers; k++ {
		e[k] = 2*p[k] - 1
	}
	return e
}

// LabelVector is one sampled payoff per player, each entry −1 or +1.
type LabelVector [NumPlayers]float64

// Dataset is an ordered, read-only collection of (X, Y, P) triples:
// strategy matrices, sampled labels and the exact payoff probabilities the
// labels were drawn from. The three slices are index-aligned.
type Dataset struct {
	X []StrategyMatrix
	Y []LabelVector
	P []PayoffProbability
}

// Len returns the number of samples in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.X)
}
