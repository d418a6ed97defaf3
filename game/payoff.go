package game

import "gonum.org/v1/gonum/mat"

// PayoffProbabilities — bilinear payoff map
//
// Description:
//
//	Given a strategy matrix X with rows x_0, x_1, x_2, the expected
//	win/loss balance of player k is the bilinear form
//
//	    n_k = x_k · A_{k,k+1} · x_{k+1}ᵀ + x_k · A_{k,k+2} · x_{k+2}ᵀ
//
//	(player indices mod 3, using the ordered rule matrices), and the
//	probability of a +1 payoff is p_k = (n_k/2 + 1)/2.
//
// Invariant:
//
//	Σ_k (2p_k − 1) = 0 for every valid X. This follows algebraically from
//	A_{jk} = −A_{kj}ᵀ: each pairwise term x_k·A_{kj}·x_jᵀ cancels against
//	x_j·A_{jk}·x_kᵀ, so Σ_k n_k = 0 and the expectations sum to zero.
//	Tests assert this within DefaultEpsilon.
//
// Errors:
//   - ErrNaNInf / ErrNegativeEntry / ErrRowSum — X fails validation.
//
// Complexity: O(1) (three 3×3 bilinear forms).
func PayoffProbabilities(x StrategyMatrix) (PayoffProbability, error) {
	var p PayoffProbability
	if err := x.Validate(); err != nil {
		return p, err
	}

	var vecs [NumPlayers]*mat.VecDense
	for k := 0; k < NumPlayers; k++ {
		row := x[k] // copy; VecDense may keep the backing slice
		vecs[k] = mat.NewVecDense(NumActions, row[:])
	}

	for k := 0; k < NumPlayers; k++ {
		var n float64
		for d := 1; d < NumPlayers; d++ {
			j := (k + d) % NumPlayers
			a, err := rules.Pair(k, j)
			if err != nil {
				return PayoffProbability{}, err
			}
			n += mat.Inner(vecs[k], a, vecs[j])
		}
		p[k] = (n/2 + 1) / 2
	}
	return p, nil
}
