package train

import (
	"math"

	"github.com/zerosumlab/zerosum/ansatz"
	"github.com/zerosumlab/zerosum/game"
)

// ProbFloor is the lower cutoff applied to probabilities before taking
// logarithms, in both the likelihood and the KL evaluation. A label
// probability can reach 0 exactly (a readout expectation of ±1 with the
// opposite label), which would make the loss infinite; the floor keeps the
// objective finite while distorting it only below 1e-8.
const ProbFloor = 1e-8

// NegLogLikelihood computes the training objective
//
//	L = −(1/(N·3)) Σ_samples Σ_players log P(y_k | X)
//
// where P(y_k | X) = (1 + y_k·⟨Z_k⟩)/2 is the model's probability of the
// observed label, floored at ProbFloor. The result is non-negative whenever
// every label probability is ≤ 1, which holds by construction.
//
// Errors:
//   - ErrNilModel / ErrEmptyDataset — missing inputs.
//   - ansatz.ErrDimensionMismatch and game validation sentinels, propagated
//     from Evaluate.
//
// Complexity: O(N) circuit evaluations.
func NegLogLikelihood(m ansatz.Model, p ansatz.Params, ds *game.Dataset) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if ds.Len() == 0 {
		return 0, ErrEmptyDataset
	}

	var total float64
	for i := 0; i < ds.Len(); i++ {
		e, err := m.Evaluate(p, ds.X[i])
		if err != nil {
			return 0, err
		}
		for k := 0; k < game.NumPlayers; k++ {
			prob := (1 + ds.Y[i][k]*e[k]) / 2
			if prob < ProbFloor {
				prob = ProbFloor
			}
			total += math.Log(prob)
		}
	}
	return -total / float64(ds.Len()*game.NumPlayers), nil
}
