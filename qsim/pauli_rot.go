package qsim

import (
	"math"
	"math/cmplx"
)

// Two-qubit Pauli-word rotations R_PP(θ) = exp(−i·θ/2·P⊗P).
//
// RZZ is diagonal: each basis state picks up a phase with the sign of its
// Z⊗Z eigenvalue (+1 when the two bits agree, −1 when they differ).
//
// RXX and RYY couple basis states that differ in BOTH bits (X and Y each
// flip their qubit): the pair (i, i^mask) mixes through
//
//	|i⟩ → cos(θ/2)|i⟩ − i·sin(θ/2)·s·|j⟩
//
// where s is the matrix element of the Pauli word between the pair
// (+1 for X⊗X; for Y⊗Y, −1 on the {00,11} pair and +1 on the {01,10} pair,
// from Y|b⟩ = i(−1)^b|1−b⟩).

// RZZ applies exp(−i·θ/2·Z⊗Z) on qubits a and b.
func (s *State) RZZ(a, b int, theta float64) *State {
	s.checkQubit(a)
	s.checkQubit(b)
	if a == b {
		panic("qsim: RZZ acts on two distinct qubits")
	}
	abit, bbit := 1<<a, 1<<b
	plus := cmplx.Exp(complex(0, -theta/2))  // eigenvalue +1: bits agree
	minus := cmplx.Exp(complex(0, +theta/2)) // eigenvalue −1: bits differ
	for i := range s.amps {
		if (i&abit == 0) == (i&bbit == 0) {
			s.amps[i] *= plus
		} else {
			s.amps[i] *= minus
		}
	}
	return s
}

// RXX applies exp(−i·θ/2·X⊗X) on qubits a and b.
func (s *State) RXX(a, b int, theta float64) *State {
	s.checkQubit(a)
	s.checkQubit(b)
	if a == b {
		panic("qsim: RXX acts on two distinct qubits")
	}
	abit, bbit := 1<<a, 1<<b
	mask := abit | bbit
	c := complex(math.Cos(theta/2), 0)
	isn := complex(0, math.Sin(theta/2))
	for i := range s.amps {
		if i&abit == 0 { // visit each (i, i^mask) pair once
			j := i ^ mask
			ai, aj := s.amps[i], s.amps[j]
			s.amps[i] = c*ai - isn*aj
			s.amps[j] = c*aj - isn*ai
		}
	}
	return s
}

// RYY applies exp(−i·θ/2·Y⊗Y) on qubits a and b.
func (s *State) RYY(a, b int, theta float64) *State {
	s.checkQubit(a)
	s.checkQubit(b)
	if a == b {
		panic("qsim: RYY acts on two distinct qubits")
	}
	abit, bbit := 1<<a, 1<<b
	mask := abit | bbit
	c := complex(math.Cos(theta/2), 0)
	isn := complex(0, math.Sin(theta/2))
	for i := range s.amps {
		if i&abit == 0 {
			j := i ^ mask
			// Y⊗Y matrix element between the pair: −1 when the two bits of i
			// agree ({00,11} pair), +1 when they differ ({01,10} pair).
			sign := complex128(1)
			if (i&abit == 0) == (i&bbit == 0) {
				sign = -1
			}
			ai, aj := s.amps[i], s.amps[j]
			s.amps[i] = c*ai - isn*sign*aj
			s.amps[j] = c*aj - isn*sign*ai
		}
	}
	return s
}
