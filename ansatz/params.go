package ansatz

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GateSlots is the number of angle slots per (row, block) pair:
//   - biased trainable unitary: 3 single-qubit RZ + 3 pairwise RZZ +
//     3 pairwise exchange angles;
//   - generic entangling block: 3 ZYZ angles for each of the 3 qubits.
//
// Both layouts consume exactly 9 slots, which keeps the two models'
// parameter tensors directly comparable.
const GateSlots = 9

// Params is a flat angle tensor in row-major (row, block, gate) order.
// Rows are trainable-unitary applications: 2·Layers+2 rows for the biased
// model (the extra final row's slot 0 holds the preparation angle α) and
// 2·Layers+1 rows for the generic model.
//
// The tensor is opaque to the models beyond indexing: optimizers may mutate
// it freely between evaluations.
type Params []float64

// Clone returns an independent copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// slot computes the flat index of (row, block, gate) for this configuration.
func (c Config) slot(row, block, gate int) int {
	return (row*c.Blocks+block)*GateSlots + gate
}

// biasedParamCount is the tensor length of the biased model:
// 2·Layers alternating rows + 1 final trainable row + 1 preparation row.
func biasedParamCount(c Config) int {
	return (2*c.Layers + 2) * c.Blocks * GateSlots
}

// genericParamCount is the tensor length of the generic model:
// 2·Layers alternating rows + 1 final trainable row.
func genericParamCount(c Config) int {
	return (2*c.Layers + 1) * c.Blocks * GateSlots
}

// InitParams draws n angles uniformly from [0, 2π), the conventional
// initialization for both models. rng may be nil, in which case a fixed
// deterministic stream is used (explicit seeds are still the norm; the nil
// fallback only keeps examples short).
//
// Complexity: O(n).
func InitParams(n int, rng *rand.Rand) Params {
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	uniform := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: r}
	p := make(Params, n)
	for i := range p {
		p[i] = uniform.Rand()
	}
	return p
}
