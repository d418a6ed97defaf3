package train_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerosumlab/zerosum/ansatz"
	"github.com/zerosumlab/zerosum/train"
)

// TestGradient_MatchesAnalytic checks the central difference against the
// analytic gradient of f(p) = p0² + 2·p1.
func TestGradient_MatchesAnalytic(t *testing.T) {
	f := func(p ansatz.Params) (float64, error) { return p[0]*p[0] + 2*p[1], nil }
	p := ansatz.Params{1.5, -0.7}

	g, err := train.Gradient(f, p)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, g[0], 1e-4)
	assert.InDelta(t, 2.0, g[1], 1e-4)
	assert.Equal(t, ansatz.Params{1.5, -0.7}, p, "input tensor must not be mutated")
}

// TestAdam_MinimizesQuadratic runs the full Update/Apply cycle on
// f(p) = (p0 − 3)² and expects convergence near the minimum.
func TestAdam_MinimizesQuadratic(t *testing.T) {
	f := func(p ansatz.Params) (float64, error) { return (p[0] - 3) * (p[0] - 3), nil }

	opt := train.NewAdam(0.1)
	params := ansatz.Params{0}
	st := opt.Init(params)

	for i := 0; i < 500; i++ {
		g, err := train.Gradient(f, params)
		require.NoError(t, err)
		var updates []float64
		updates, st = opt.Update(g, st, params)
		params = opt.Apply(params, updates)
	}
	assert.InDelta(t, 3.0, params[0], 0.1)
}

// TestAdam_ApplyDoesNotMutate verifies the copy-on-apply contract.
func TestAdam_ApplyDoesNotMutate(t *testing.T) {
	opt := train.NewAdam(0.01)
	p := ansatz.Params{1, 2, 3}
	out := opt.Apply(p, []float64{0.5, 0.5, 0.5})

	assert.Equal(t, ansatz.Params{1, 2, 3}, p)
	assert.Equal(t, ansatz.Params{1.5, 2.5, 3.5}, out)
}

// TestNewAdam_Defaults checks the fallback rate and canonical moments.
func TestNewAdam_Defaults(t *testing.T) {
	a := train.NewAdam(0)
	assert.Equal(t, train.DefaultLearningRate, a.LearningRate)
	assert.Equal(t, train.DefaultBeta1, a.Beta1)
	assert.Equal(t, train.DefaultBeta2, a.Beta2)
	assert.Equal(t, train.DefaultEpsilon, a.Epsilon)
}

// TestAdam_FirstStepMagnitude pins the bias-corrected first update: for any
// gradient g, the first step has magnitude ≈ lr (sign opposite to g).
func TestAdam_FirstStepMagnitude(t *testing.T) {
	opt := train.NewAdam(0.05)
	p := ansatz.Params{0}
	st := opt.Init(p)

	updates, _ := opt.Update([]float64{4.2}, st, p)
	assert.InDelta(t, -0.05, updates[0], 1e-6)

	opt2 := train.NewAdam(0.05)
	st2 := opt2.Init(p)
	updates2, _ := opt2.Update([]float64{-0.003}, st2, p)
	assert.InDelta(t, 0.05, updates2[0], 1e-3)
	assert.False(t, math.Signbit(updates2[0]))
}
