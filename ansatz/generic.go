package ansatz

import (
	"github.com/zerosumlab/zerosum/game"
	"github.com/zerosumlab/zerosum/qsim"
)

// Generic is the unconstrained baseline: the same data encodings as Biased,
// but trainable rows are strongly-entangling blocks (a full ZYZ rotation per
// qubit followed by a CNOT ring) whose generators do NOT commute with
// Z0+Z1+Z2. There is no input preparation and no invariant guarantee; the
// model must learn the zero-sum structure from data, if it learns it at all.
type Generic struct {
	cfg Config
}

// NewGeneric constructs the baseline model for the given configuration.
//
// Errors:
//   - ErrBadConfig — non-positive Blocks or Layers.
func NewGeneric(cfg Config) (*Generic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generic{cfg: cfg}, nil
}

// Config returns the model's structural configuration.
func (m *Generic) Config() Config { return m.cfg }

// ParamCount returns the expected parameter tensor length:
// (2·Layers+1)·Blocks·GateSlots — 3 ZYZ angles per qubit per block, with
// one fewer row than the biased model (no preparation angle).
func (m *Generic) ParamCount() int { return genericParamCount(m.cfg) }

// Evaluate runs the circuit on a fresh 3-qubit register and returns the
// three ⟨Z⟩ expectations.
//
// Errors:
//   - ErrDimensionMismatch — len(p) != ParamCount().
//   - game validation sentinels — malformed X.
func (m *Generic) Evaluate(p Params, x game.StrategyMatrix) ([game.NumPlayers]float64, error) {
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

	singles, pairs := features(x)
	for l := 0; l < 2*m.cfg.Layers; l += 2 {
		m.entanglingBlock(s, p, l)
		encodeSingles(s, singles)
		m.entanglingBlock(s, p, l+1)
		encodePairs(s, pairs)
	}
	m.entanglingBlock(s, p, 2*m.cfg.Layers)

	return readout(s), nil
}

// entanglingBlock applies one strongly-entangling row: per block, a ZYZ
// rotation Rot(φ,θ,ω) = RZ(φ)·RY(θ)·RZ(ω) on each qubit, then the CNOT ring
// 0→1→2→0.
func (m *Generic) entanglingBlock(s *qsim.State, p Params, row int) {
	for b := 0; b < m.cfg.Blocks; b++ {
		for q := 0; q < numWires; q++ {
			s.RZ(q, p[m.cfg.slot(row, b, 3*q)])
			s.RY(q, p[m.cfg.slot(row, b, 3*q+1)])
			s.RZ(q, p[m.cfg.slot(row, b, 3*q+2)])
		}
		s.CNOT(0, 1)
		s.CNOT(1, 2)
		s.CNOT(2, 0)
	}
}
