package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

// State is a pure quantum state over a small register: 2^n complex
// amplitudes in basis order, qubit q mapped to index bit 1<<q.
type State struct {
	amps   []complex128
	qubits int
}

// New returns the register initialized to |0…0⟩.
//
// Errors:
//   - ErrBadQubitCount — qubits < 1 or qubits > MaxQubits.
func New(qubits int) (*State, error) {
	if qubits < 1 || qubits > MaxQubits {
		return nil, ErrBadQubitCount
	}
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &State{amps: amps, qubits: qubits}, nil
}

// Qubits returns the register size.
func (s *State) Qubits() int { return s.qubits }

// Amplitudes returns a copy of the amplitude vector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// checkQubit panics on an out-of-range register index (programmer error).
func (s *State) checkQubit(q int) {
	if q < 0 || q >= s.qubits {
		panic(fmt.Sprintf("qsim: qubit %d out of range [0,%d)", q, s.qubits))
	}
}

// H applies the Hadamard gate to qubit q.
func (s *State) H(q int) *State {
	s.checkQubit(q)
	bit := 1 << q
	inv := complex(1/math.Sqrt2, 0)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = inv * (a + b)
			s.amps[j] = inv * (a - b)
		}
	}
	return s
}

// RY applies exp(−i·θ/2·Y) to qubit q.
func (s *State) RY(q int, theta float64) *State {
	s.checkQubit(q)
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = c*a - sn*b
			s.amps[j] = sn*a + c*b
		}
	}
	return s
}

// RZ applies exp(−i·θ/2·Z) to qubit q (a diagonal phase).
func (s *State) RZ(q int, theta float64) *State {
	s.checkQubit(q)
	bit := 1 << q
	lo := cmplx.Exp(complex(0, -theta/2)) // Z eigenvalue +1 (bit clear)
	hi := cmplx.Exp(complex(0, +theta/2)) // Z eigenvalue −1 (bit set)
	for i := range s.amps {
		if i&bit == 0 {
			s.amps[i] *= lo
		} else {
			s.amps[i] *= hi
		}
	}
	return s
}

// CNOT applies a controlled-NOT with control c and target t.
// Panics if c == t or either index is out of range.
func (s *State) CNOT(c, t int) *State {
	s.checkQubit(c)
	s.checkQubit(t)
	if c == t {
		panic("qsim: CNOT control equals target")
	}
	cbit, tbit := 1<<c, 1<<t
	for i := range s.amps {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return s
}
