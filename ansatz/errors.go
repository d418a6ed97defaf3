// Package ansatz: sentinel error set.

package ansatz

import "errors"

var (
	// ErrBadConfig is returned when Blocks or Layers is non-positive.
	ErrBadConfig = errors.New("ansatz: blocks and layers must be >= 1")

	// ErrDimensionMismatch is returned when a parameter tensor's length is
	// incompatible with the model's configured Blocks/Layers.
	ErrDimensionMismatch = errors.New("ansatz: parameter length does not match configuration")
)
