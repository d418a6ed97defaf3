package train_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/zerosumlab/zerosum/ansatz"
	"github.com/zerosumlab/zerosum/game"
	"github.com/zerosumlab/zerosum/train"
)

// tinyConfig keeps Fit tests fast: a 1-layer model, a handful of samples and
// a handful of steps.
func tinyConfig() train.Config {
	cfg := train.DefaultConfig()
	cfg.Layers = 1
	cfg.Steps = 3
	cfg.TrainSize = 4
	cfg.TestSize = 4
	cfg.LearningRate = 0.05
	cfg.Seed = 7
	return cfg
}

// TestFit_ReportShape runs a short training and checks the report contract:
// one loss entry per step, one KL entry per step, final tensor of the right
// length, fresh run id, untouched initial tensor.
func TestFit_ReportShape(t *testing.T) {
	cfg := tinyConfig()
	model, err := ansatz.NewBiased(cfg.Ansatz())
	require.NoError(t, err)

	trainSet, err := game.GenerateDataset(cfg.TrainSize, cfg.Seed)
	require.NoError(t, err)
	testSet, err := game.GenerateDataset(cfg.TestSize, cfg.Seed+1)
	require.NoError(t, err)

	initial := ansatz.InitParams(model.ParamCount(), rand.New(rand.NewSource(cfg.Seed)))
	snapshot := initial.Clone()

	report, err := train.Fit(model, initial, trainSet, testSet, cfg, nil, nil)
	require.NoError(t, err)

	assert.Len(t, report.Loss, cfg.Steps)
	assert.Len(t, report.KL, cfg.Steps)
	assert.Len(t, report.Params, model.ParamCount())
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, snapshot, initial, "initial tensor must not be mutated")

	for i, l := range report.Loss {
		assert.False(t, math.IsNaN(l) || math.IsInf(l, 0), "loss[%d]", i)
		assert.GreaterOrEqual(t, l, 0.0, "loss[%d]", i)
	}
	for i, kl := range report.KL {
		assert.False(t, math.IsNaN(kl) || math.IsInf(kl, 0), "kl[%d]", i)
		assert.GreaterOrEqual(t, kl, 0.0, "kl[%d]", i)
	}
}

// TestFit_PreservesInvariant verifies that the trained biased model still
// satisfies the zero-sum property — training moves parameters, never the
// structure.
func TestFit_PreservesInvariant(t *testing.T) {
	cfg := tinyConfig()
	model, err := ansatz.NewBiased(cfg.Ansatz())
	require.NoError(t, err)

	trainSet, err := game.GenerateDataset(cfg.TrainSize, cfg.Seed)
	require.NoError(t, err)

	initial := ansatz.InitParams(model.ParamCount(), rand.New(rand.NewSource(11)))
	report, err := train.Fit(model, initial, trainSet, nil, cfg, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, report.KL, "no test set, no KL history")

	xs, err := game.SampleStrategyMatrices(5, rand.New(rand.NewSource(12)))
	require.NoError(t, err)
	for _, x := range xs {
		e, err := model.Evaluate(report.Params, x)
		require.NoError(t, err)
		assert.InDelta(t, 0, e[0]+e[1]+e[2], 1e-6)
	}
}

// TestFit_Deterministic verifies that two runs from identical inputs produce
// identical loss histories and final tensors (only the RunID differs).
func TestFit_Deterministic(t *testing.T) {
	cfg := tinyConfig()
	model, err := ansatz.NewBiased(cfg.Ansatz())
	require.NoError(t, err)

	trainSet, err := game.GenerateDataset(cfg.TrainSize, cfg.Seed)
	require.NoError(t, err)
	initial := ansatz.InitParams(model.ParamCount(), rand.New(rand.NewSource(5)))

	a, err := train.Fit(model, initial, trainSet, nil, cfg, nil, nil)
	require.NoError(t, err)
	b, err := train.Fit(model, initial, trainSet, nil, cfg, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Loss, b.Loss)
	assert.Equal(t, a.Params, b.Params)
	assert.NotEqual(t, a.RunID, b.RunID)
}

// TestFit_Guards checks the validation order of Fit.
func TestFit_Guards(t *testing.T) {
	cfg := tinyConfig()
	model, err := ansatz.NewBiased(cfg.Ansatz())
	require.NoError(t, err)
	trainSet, err := game.GenerateDataset(cfg.TrainSize, cfg.Seed)
	require.NoError(t, err)
	params := make(ansatz.Params, model.ParamCount())

	_, err = train.Fit(nil, params, trainSet, nil, cfg, nil, nil)
	assert.ErrorIs(t, err, train.ErrNilModel)

	bad := cfg
	bad.LearningRate = 0
	_, err = train.Fit(model, params, trainSet, nil, bad, nil, nil)
	assert.ErrorIs(t, err, train.ErrBadConfig)

	badLayers := cfg
	badLayers.Layers = 0
	_, err = train.Fit(model, params, trainSet, nil, badLayers, nil, nil)
	assert.ErrorIs(t, err, ansatz.ErrBadConfig)

	_, err = train.Fit(model, params, &game.Dataset{}, nil, cfg, nil, nil)
	assert.ErrorIs(t, err, train.ErrEmptyDataset)

	_, err = train.Fit(model, make(ansatz.Params, 1), trainSet, nil, cfg, nil, nil)
	assert.ErrorIs(t, err, ansatz.ErrDimensionMismatch)
}

// TestConfig_Validate covers the option bounds.
func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, train.DefaultConfig().Validate())

	cases := []func(*train.Config){
		func(c *train.Config) { c.Blocks = 0 },
		func(c *train.Config) { c.LearningRate = -1 },
		func(c *train.Config) { c.Steps = 0 },
		func(c *train.Config) { c.TrainSize = 0 },
		func(c *train.Config) { c.TestSize = -1 },
	}
	for i, mutate := range cases {
		cfg := train.DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
	}
}
