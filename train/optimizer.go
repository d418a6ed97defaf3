package train

import (
	"math"

	"github.com/zerosumlab/zerosum/ansatz"
)

// State is an optimizer's opaque per-run accumulator (moment estimates,
// step counters). Callers thread it through Update unchanged.
type State any

// Optimizer is a first-order optimizer with the update/apply split: Update
// turns gradients into parameter deltas, Apply adds them. Keeping the two
// apart lets callers inspect, clip or log updates before applying.
type Optimizer interface {
	// Init allocates the optimizer state for a tensor of this shape.
	Init(p ansatz.Params) State

	// Update converts a gradient into additive parameter updates.
	Update(grads []float64, st State, p ansatz.Params) ([]float64, State)

	// Apply returns a new tensor with the updates added; the input is not mutated.
	Apply(p ansatz.Params, updates []float64) ansatz.Params
}

// Adam defaults.
const (
	DefaultBeta1   = 0.9
	DefaultBeta2   = 0.999
	DefaultEpsilon = 1e-8
)

// Adam is the reference Optimizer: exponential moving averages of the
// gradient and its square with bias correction.
type Adam struct {
	LearningRate float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64
}

// NewAdam returns an Adam optimizer with the given learning rate and
// canonical moment defaults. A non-positive rate falls back to
// DefaultLearningRate.
func NewAdam(learningRate float64) *Adam {
	if learningRate <= 0 {
		learningRate = DefaultLearningRate
	}
	return &Adam{
		LearningRate: learningRate,
		Beta1:        DefaultBeta1,
		Beta2:        DefaultBeta2,
		Epsilon:      DefaultEpsilon,
	}
}

// adamState carries the step counter and the two moment vectors.
type adamState struct {
	step int
	m    []float64
	v    []float64
}

// Init allocates zeroed moment vectors sized to the tensor.
func (a *Adam) Init(p ansatz.Params) State {
	return &adamState{m: make([]float64, len(p)), v: make([]float64, len(p))}
}

// Update computes bias-corrected Adam deltas
//
//	u_i = −lr · m̂_i / (√v̂_i + ε)
//
// and advances the moment state.
func (a *Adam) Update(grads []float64, st State, _ ansatz.Params) ([]float64, State) {
	s := st.(*adamState)
	s.step++
	c1 := 1 - math.Pow(a.Beta1, float64(s.step))
	c2 := 1 - math.Pow(a.Beta2, float64(s.step))

	updates := make([]float64, len(grads))
	for i, g := range grads {
		s.m[i] = a.Beta1*s.m[i] + (1-a.Beta1)*g
		s.v[i] = a.Beta2*s.v[i] + (1-a.Beta2)*g*g
		updates[i] = -a.LearningRate * (s.m[i] / c1) / (math.Sqrt(s.v[i]/c2) + a.Epsilon)
	}
	return updates, s
}

// Apply adds the updates to a fresh copy of the tensor.
func (a *Adam) Apply(p ansatz.Params, updates []float64) ansatz.Params {
	out := p.Clone()
	for i, u := range updates {
		out[i] += u
	}
	return out
}
