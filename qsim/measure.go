package qsim

import "math/cmplx"

// ExpectZ returns the expectation value ⟨Z_q⟩ = Σ_i |amp_i|²·z(i,q),
// where z is +1 when bit q of the basis index is clear and −1 when set.
// The result lies in [−1, 1].
//
// Complexity: O(2^n).
func (s *State) ExpectZ(q int) float64 {
	s.checkQubit(q)
	bit := 1 << q
	var e float64
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if i&bit == 0 {
			e += p
		} else {
			e -= p
		}
	}
	return e
}

// Probabilities returns |amp_i|² for every basis state, in index order.
//
// Complexity: O(2^n).
func (s *State) Probabilities() []float64 {
	out := make([]float64, len(s.amps))
	for i, a := range s.amps {
		m := cmplx.Abs(a)
		out[i] = m * m
	}
	return out
}
