package train

import (
	"github.com/google/uuid"

	"github.com/zerosumlab/zerosum/ansatz"
	"github.com/zerosumlab/zerosum/game"
)

// Report is the outcome of one training run.
type Report struct {
	// RunID identifies the run in logs and result tables.
	RunID uuid.UUID

	// Loss holds the training NLL before each update, one entry per step.
	Loss []float64

	// KL holds the mean test-set KL divergence after each update, one entry
	// per step; empty when no test set was supplied.
	KL []float64

	// Params is the final parameter tensor.
	Params ansatz.Params
}

// Fit runs cfg.Steps optimization iterations of
//
//	loss → gradient → optimizer update → apply
//
// on the training set, optionally tracking the mean marginal KL divergence
// on testSet after every update. The initial tensor is cloned; neither it
// nor the datasets are mutated. opt defaults to NewAdam(cfg.LearningRate)
// and grad to the finite-difference Gradient when nil.
//
// Errors:
//   - ErrNilModel / ErrEmptyDataset — missing inputs.
//   - ErrBadConfig / ansatz.ErrBadConfig — invalid configuration.
//   - ansatz.ErrDimensionMismatch — initial tensor of the wrong length.
//   - evaluation errors propagated from the model.
//
// Complexity: O(Steps · len(params) · TrainSize) circuit evaluations with
// the default finite-difference gradient.
func Fit(m ansatz.Model, initial ansatz.Params, trainSet, testSet *game.Dataset, cfg Config, opt Optimizer, grad GradientFunc) (*Report, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if trainSet.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if len(initial) != m.ParamCount() {
		return nil, ansatz.ErrDimensionMismatch
	}
	if opt == nil {
		opt = NewAdam(cfg.LearningRate)
	}
	if grad == nil {
		grad = Gradient
	}

	loss := func(w ansatz.Params) (float64, error) {
		return NegLogLikelihood(m, w, trainSet)
	}

	params := initial.Clone()
	st := opt.Init(params)
	report := &Report{
		RunID: uuid.New(),
		Loss:  make([]float64, 0, cfg.Steps),
	}

	for step := 0; step < cfg.Steps; step++ {
		l, err := loss(params)
		if err != nil {
			return nil, err
		}
		g, err := grad(loss, params)
		if err != nil {
			return nil, err
		}
		updates, next := opt.Update(g, st, params)
		st = next
		params = opt.Apply(params, updates)
		report.Loss = append(report.Loss, l)

		if testSet.Len() > 0 {
			kl, err := AverageKL(m, params, testSet.X, testSet.P)
			if err != nil {
				return nil, err
			}
			report.KL = append(report.KL, kl)
		}
	}

	report.Params = params
	return report, nil
}
