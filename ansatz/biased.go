package ansatz

import (
	"math"

	"github.com/zerosumlab/zerosum/game"
	"github.com/zerosumlab/zerosum/qsim"
)

// Biased is the bias-invariant circuit model.
//
// Invariant: Σ_k (2·p_k − 1) = 0 for every parameter tensor and every valid
// input. The guarantee decomposes into two algebraic facts:
//
//  1. Input preparation puts the register on the invariant's zero surface:
//     H on all three wires yields ⟨Z_q⟩ = 0 per wire, and the RY pair
//     (α on wire 0, α+π on wire 1) shifts those two marginals by cos-terms
//     of opposite sign, so ⟨Z0⟩+⟨Z1⟩ stays 0 for every α while ⟨Z2⟩ = 0.
//
//  2. Every subsequent generator — single-qubit Z, pairwise Z⊗Z, the
//     pairwise exchange XX+YY+ZZ, and both data encodings — commutes with
//     Z0+Z1+Z2, so evolution never moves the state off the zero surface.
type Biased struct {
	cfg Config
}

// NewBiased constructs the bias-invariant model for the given configuration.
//
// Errors:
//   - ErrBadConfig — non-positive Blocks or Layers.
func NewBiased(cfg Config) (*Biased, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Biased{cfg: cfg}, nil
}

// Config returns the model's structural configuration.
func (m *Biased) Config() Config { return m.cfg }

// ParamCount returns the expected parameter tensor length:
// (2·Layers+2)·Blocks·GateSlots. The final row carries the preparation
// angle α in slot (row=2·Layers+1, block=0, gate=0); its remaining slots
// are reserved and ignored.
func (m *Biased) ParamCount() int { return biasedParamCount(m.cfg) }

// Evaluate runs the circuit on a fresh 3-qubit register and returns the
// three ⟨Z⟩ expectations.
//
// Errors:
//   - ErrDimensionMismatch — len(p) != ParamCount().
//   - game validation sentinels — malformed X.
//
// Complexity: O(Layers·Blocks) gate applications, each O(2³).
func (m *Biased) Evaluate(p Params, x game.StrategyMatrix) ([game.NumPlayers]float64, error) {
	var zero [game.NumPlayers]float64
	if len(p) != m.ParamCount() {
		return zero, ErrDimensionMismatch
	}
	if err := x.Validate(); err != nil {
		return zero, err
	}

	s, err := qsim.New(numWires)
	if err != nil {
		return zero, err
	}

	alpha := p[m.cfg.slot(2*m.cfg.Layers+1, 0, 0)]
	inputPrep(s, alpha)

	singles, pairs := features(x)
	for l := 0; l < 2*m.cfg.Layers; l += 2 {
		m.trainableUnitary(s, p, l)
		encodeSingles(s, singles)
		m.trainableUnitary(s, p, l+1)
		encodePairs(s, pairs)
	}
	m.trainableUnitary(s, p, 2*m.cfg.Layers)

	return readout(s), nil
}

// inputPrep prepares the zero-invariant initial state: Hadamards on all
// wires, then the antisymmetric RY pair on wires 0 and 1.
func inputPrep(s *qsim.State, alpha float64) {
	for q := 0; q < numWires; q++ {
		s.H(q)
	}
	s.RY(0, alpha)
	s.RY(1, alpha+math.Pi)
}

// trainableUnitary applies one bias-invariant trainable row: per block,
// single-qubit RZ rotations, pairwise RZZ rotations, and one exchange
// rotation per pair.
func (m *Biased) trainableUnitary(s *qsim.State, p Params, row int) {
	for b := 0; b < m.cfg.Blocks; b++ {
		for q := 0; q < numWires; q++ {
			s.RZ(q, p[m.cfg.slot(row, b, q)])
		}
		for i, pair := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
			s.RZZ(pair[0], pair[1], p[m.cfg.slot(row, b, 3+i)])
		}
		for i, pair := range wirePairs {
			exchangeRot(s, pair[0], pair[1], p[m.cfg.slot(row, b, 6+i)])
		}
	}
}

// exchangeRot applies exp(−i·θ/2·(XX+YY+ZZ)) on one pair: the three Pauli
// words commute pairwise on the same wires, so the composite of the three
// rotations with a shared angle equals the exponential of the sum.
func exchangeRot(s *qsim.State, a, b int, theta float64) {
	s.RXX(a, b, theta).RYY(a, b, theta).RZZ(a, b, theta)
}
