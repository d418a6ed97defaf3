package ansatz

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultBlocks is the number of blocks inside each trainable unitary.
	DefaultBlocks = 1

	// DefaultLayers is the number of (trainable, encoding) layer repetitions.
	DefaultLayers = 2
)

// Config fixes the structural hyperparameters of a model. It is consumed by
// value at construction time; models never read mutable shared state, so a
// process may hold differently-configured models side by side.
type Config struct {
	// Blocks is the number of repetitions inside each trainable unitary (>= 1).
	Blocks int

	// Layers is the number of trainable/encoding alternations (>= 1).
	Layers int
}

// DefaultConfig returns the canonical configuration (Blocks=1, Layers=2).
func DefaultConfig() Config {
	return Config{Blocks: DefaultBlocks, Layers: DefaultLayers}
}

// Validate checks that both hyperparameters are positive.
//
// Errors:
//   - ErrBadConfig — Blocks < 1 or Layers < 1.
func (c Config) Validate() error {
	if c.Blocks < 1 || c.Layers < 1 {
		return ErrBadConfig
	}
	return nil
}
