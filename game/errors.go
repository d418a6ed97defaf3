// Package game: sentinel error set.
// All public functions return these sentinels (or wrap them with
// fmt.Errorf("op: %w", err) at facade boundaries); tests match them via
// errors.Is. No function panics on user-triggered conditions.

package game

import "errors"

var (
	// ErrNonPositiveCount is returned when a sample count n < 1 is requested.
	ErrNonPositiveCount = errors.New("game: sample count must be >= 1")

	// ErrRowSum indicates a strategy row whose entries do not sum to 1
	// within DefaultEpsilon. Rows are probability distributions by contract.
	ErrRowSum = errors.New("game: strategy row does not sum to 1")

	// ErrNegativeEntry indicates a negative probability in a strategy row.
	ErrNegativeEntry = errors.New("game: negative strategy entry")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("game: NaN or Inf encountered")

	// ErrPlayerOutOfRange indicates a player index outside [0, NumPlayers).
	ErrPlayerOutOfRange = errors.New("game: player index out of range")
)
