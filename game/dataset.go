package game

import "gonum.org/v1/gonum/stat/distuv"

// GenerateDataset produces a labeled dataset of n samples:
//
//  1. sample n strategy matrices (uniform rows, normalized);
//  2. compute the exact payoff probabilities P_i for each;
//  3. draw one ±1 label per player per sample by comparing an independent
//     uniform draw u against p: u < p ⇒ +1, otherwise −1.
//
// The seed fully determines the result: strategy sampling and label drawing
// use decorrelated sub-streams derived from it, so repeated calls with the
// same (n, seed) are bit-identical. seed==0 maps to the stable default seed.
//
// Errors:
//   - ErrNonPositiveCount — n < 1.
//
// Complexity: O(n) time, O(n) space.
func GenerateDataset(n int, seed uint64) (*Dataset, error) {
	if n < 1 {
		return nil, ErrNonPositiveCount
	}

	strategies, err := SampleStrategyMatrices(n, deriveRand(seed, streamStrategies))
	if err != nil {
		return nil, err
	}

	labelRNG := deriveRand(seed, streamLabels)
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: labelRNG}

	ds := &Dataset{
		X: strategies,
		Y: make([]LabelVector, n),
		P: make([]PayoffProbability, n),
	}
	for i := 0; i < n; i++ {
		p, err := PayoffProbabilities(ds.X[i])
		if err != nil {
			return nil, err
		}
		ds.P[i] = p
		for k := 0; k < NumPlayers; k++ {
			if uniform.Rand() < p[k] {
				ds.Y[i][k] = 1
			} else {
				ds.Y[i][k] = -1
			}
		}
	}
	return ds, nil
}
