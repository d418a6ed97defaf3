// Package qsim: sentinel error set.

package qsim

import "errors"

var (
	// ErrBadQubitCount is returned by New for register sizes outside [1, MaxQubits].
	ErrBadQubitCount = errors.New("qsim: qubit count out of range")
)

// MaxQubits bounds the register size; 2^20 amplitudes (16 MiB) is already far
// beyond what this module needs and keeps accidental huge allocations out.
const MaxQubits = 20
