package train

import "github.com/zerosumlab/zerosum/ansatz"

// DEFAULTS - single source of truth, mirrored by DefaultConfig.
const (
	// DefaultLearningRate is Adam's initial learning rate.
	DefaultLearningRate = 0.001

	// DefaultSteps is the number of optimization steps.
	DefaultSteps = 1000

	// DefaultTrainSize is the number of training samples to generate.
	DefaultTrainSize = 2000

	// DefaultTestSize is the number of test samples for KL evaluation.
	DefaultTestSize = 10000

	// DefaultSeed is the canonical dataset/parameter seed.
	DefaultSeed uint64 = 666
)

// Config bundles the recognized experiment options: the model's structural
// hyperparameters plus the training-loop knobs.
type Config struct {
	// Blocks and Layers configure the circuit models (see ansatz.Config).
	Blocks int
	Layers int

	// LearningRate is the optimizer step size (> 0).
	LearningRate float64

	// Steps is the number of optimization iterations (>= 1).
	Steps int

	// TrainSize and TestSize are dataset sizes; TestSize may be 0 to skip
	// KL tracking during training.
	TrainSize int
	TestSize  int

	// Seed drives dataset generation and parameter initialization.
	Seed uint64
}

// DefaultConfig returns the canonical experiment configuration.
func DefaultConfig() Config {
	return Config{
		Blocks:       ansatz.DefaultBlocks,
		Layers:       ansatz.DefaultLayers,
		LearningRate: DefaultLearningRate,
		Steps:        DefaultSteps,
		TrainSize:    DefaultTrainSize,
		TestSize:     DefaultTestSize,
		Seed:         DefaultSeed,
	}
}

// Ansatz projects the structural part of the configuration.
func (c Config) Ansatz() ansatz.Config {
	return ansatz.Config{Blocks: c.Blocks, Layers: c.Layers}
}

// Validate checks the full option set.
//
// Errors:
//   - ansatz.ErrBadConfig — non-positive Blocks/Layers.
//   - ErrBadConfig — non-positive learning rate, steps or train size, or
//     negative test size.
func (c Config) Validate() error {
	if err := c.Ansatz().Validate(); err != nil {
		return err
	}
	if c.LearningRate <= 0 || c.Steps < 1 || c.TrainSize < 1 || c.TestSize < 0 {
		return ErrBadConfig
	}
	return nil
}
