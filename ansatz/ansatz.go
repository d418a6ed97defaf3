package ansatz

import (
	"github.com/zerosumlab/zerosum/game"
	"github.com/zerosumlab/zerosum/qsim"
)

// numWires is the register size: one qubit per player.
const numWires = game.NumPlayers

// Model is the common surface of the biased and generic circuits: a pure,
// stateless map from (params, X) to the three ⟨Z⟩ expectation values.
// Implementations are safe for concurrent use; each Evaluate call works on
// its own fresh register.
type Model interface {
	// Evaluate runs the circuit and returns ⟨Z0⟩, ⟨Z1⟩, ⟨Z2⟩ in [−1, 1].
	// Errors: ErrDimensionMismatch for a wrong parameter length, plus the
	// game package's validation sentinels for a malformed X.
	Evaluate(p Params, x game.StrategyMatrix) ([game.NumPlayers]float64, error)

	// ParamCount is the exact tensor length Evaluate expects.
	ParamCount() int
}

// Probabilities converts readout expectations to win probabilities
// p_k = (1 + ⟨Z_k⟩)/2.
func Probabilities(e [game.NumPlayers]float64) [game.NumPlayers]float64 {
	var p [game.NumPlayers]float64
	for k := range e {
		p[k] = (1 + e[k]) / 2
	}
	return p
}

// wirePairs enumerates the three qubit pairs in canonical order.
var wirePairs = [3][2]int{{0, 1}, {1, 2}, {0, 2}}

// encodeSingles applies the first-order data encoding S¹: one RZ per qubit
// with the diagonal feature as angle. RZ commutes with Z0+Z1+Z2, so the
// encoding is bias-invariant.
func encodeSingles(s *qsim.State, f [3]float64) {
	for q := 0; q < numWires; q++ {
		s.RZ(q, f[q])
	}
}

// encodePairs applies the second-order data encoding S²: one RZZ per qubit
// pair with the product of the two off-diagonal-difference features as
// angle. Also bias-invariant.
func encodePairs(s *qsim.State, f [3]float64) {
	for _, pair := range wirePairs {
		s.RZZ(pair[0], pair[1], f[pair[0]]*f[pair[1]])
	}
}

// readout measures the three designated single-qubit observables.
func readout(s *qsim.State) [game.NumPlayers]float64 {
	var e [game.NumPlayers]float64
	for q := 0; q < numWires; q++ {
		e[q] = s.ExpectZ(q)
	}
	return e
}
