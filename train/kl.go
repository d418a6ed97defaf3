package train

import (
	"gonum.org/v1/gonum/stat"

	"github.com/zerosumlab/zerosum/ansatz"
	"github.com/zerosumlab/zerosum/game"
)

// Marginals expands per-player win probabilities (or readout expectations
// via ansatz.Probabilities) into full two-outcome distributions
// [P(+1), P(−1)] per player.
func Marginals(p [game.NumPlayers]float64) [game.NumPlayers][2]float64 {
	var out [game.NumPlayers][2]float64
	for k := 0; k < game.NumPlayers; k++ {
		out[k][0] = p[k]
		out[k][1] = 1 - p[k]
	}
	return out
}

// KLMarginals returns the mean forward KL divergence over the three players,
//
//	(1/3) Σ_k D_KL( truth_k ‖ model_k ),
//
// with the model (reference) distribution floored at ProbFloor before the
// logarithm. Zero-mass terms of the truth contribute 0 (the usual limit
// convention, which gonum's stat.KullbackLeibler follows), so
// KLMarginals(p, p) is exactly 0 for any valid p.
//
// Complexity: O(1).
func KLMarginals(model, truth [game.NumPlayers][2]float64) float64 {
	var sum float64
	for k := 0; k < game.NumPlayers; k++ {
		q := model[k]
		for o := range q {
			if q[o] < ProbFloor {
				q[o] = ProbFloor
			}
		}
		sum += stat.KullbackLeibler(truth[k][:], q[:])
	}
	return sum / game.NumPlayers
}

// AverageKL estimates the expected marginal KL divergence over a test set:
// the sample mean of KLMarginals between the analytic payoff marginals and
// the model's.
//
// Errors:
//   - ErrNilModel / ErrEmptyDataset / ErrLengthMismatch — missing or
//     misaligned inputs.
//   - evaluation errors propagated from the model.
//
// Complexity: O(N) circuit evaluations.
func AverageKL(m ansatz.Model, p ansatz.Params, xs []game.StrategyMatrix, ps []game.PayoffProbability) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if len(xs) == 0 {
		return 0, ErrEmptyDataset
	}
	if len(xs) != len(ps) {
		return 0, ErrLengthMismatch
	}

	var sum float64
	for i := range xs {
		e, err := m.Evaluate(p, xs[i])
		if err != nil {
			return 0, err
		}
		sum += KLMarginals(Marginals(ansatz.Probabilities(e)), Marginals(ps[i]))
	}
	return sum / float64(len(xs)), nil
}
