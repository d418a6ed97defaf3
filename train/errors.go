// Package train: sentinel error set.

package train

import "errors"

var (
	// ErrEmptyDataset is returned when a loss or fit is requested over zero samples.
	ErrEmptyDataset = errors.New("train: dataset is empty")

	// ErrNilModel is returned when no model is supplied.
	ErrNilModel = errors.New("train: model is nil")

	// ErrBadConfig is returned for non-positive learning rate, steps or sizes.
	ErrBadConfig = errors.New("train: invalid configuration")

	// ErrLengthMismatch indicates index-aligned slices of different lengths.
	ErrLengthMismatch = errors.New("train: slice lengths differ")
)
