package ansatz

import (
	"math"

	"github.com/zerosumlab/zerosum/game"
)

// DataScale rescales probability-space features into rotation angles.
// Strategies live in [0,1]; multiplying by π/2 spreads them over a quarter
// turn, which keeps the encoding injective on the feature range.
const DataScale = math.Pi / 2

// features extracts the two encoding vectors from a strategy matrix:
//
//	singles[q] = DataScale · X[q][q]            (diagonal entries)
//	pairs[q]   = DataScale · (row-wise off-diagonal difference)
//	             pairs[0] = X01−X02, pairs[1] = X12−X10, pairs[2] = X20−X21
//
// Together the two vectors are a lossless reparametrization of X minus the
// row-sum constraint: each row contributes its diagonal entry and the
// difference of its two off-diagonal entries.
func features(x game.StrategyMatrix) (singles, pairs [3]float64) {
	singles = [3]float64{
		DataScale * x[0][0],
		DataScale * x[1][1],
		DataScale * x[2][2],
	}
	pairs = [3]float64{
		DataScale * (x[0][1] - x[0][2]),
		DataScale * (x[1][2] - x[1][0]),
		DataScale * (x[2][0] - x[2][1]),
	}
	return singles, pairs
}
