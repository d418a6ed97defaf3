package game

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleStrategyMatrices generates n random strategy matrices: each row is
// drawn as three independent uniform(0,1) values and rescaled by their sum,
// yielding a valid probability distribution per row.
//
// rng may be nil, in which case the deterministic default stream is used
// (seed==0 policy from rng.go).
//
// Errors:
//   - ErrNonPositiveCount — n < 1.
//
// Complexity: O(n) time, O(n) space.
func SampleStrategyMatrices(n int, rng *rand.Rand) ([]StrategyMatrix, error) {
	if n < 1 {
		return nil, ErrNonPositiveCount
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: r}

	out := make([]StrategyMatrix, n)
	for i := 0; i < n; i++ {
		for k := 0; k < NumPlayers; k++ {
			for c := 0; c < NumActions; c++ {
				out[i][k][c] = uniform.Rand()
			}
			sum := floats.Sum(out[i][k][:])
			floats.Scale(1/sum, out[i][k][:])
		}
	}
	return out, nil
}
