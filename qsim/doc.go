// Package qsim is a minimal statevector engine for small qubit registers.
//
// 🚀 What is qsim?
//
//	Just enough quantum simulation to evaluate the module's circuit models:
//	a complex128 amplitude vector over 2^n basis states, a fixed gate set
//	(H, RY, RZ, CNOT, and the two-qubit Pauli rotations RXX, RYY, RZZ) and
//	single-qubit ⟨Z⟩ readout. It is deliberately NOT a general simulator:
//	no measurement sampling, no density matrices, no arbitrary unitaries.
//
// Conventions:
//
//   - Basis state index bit q (value 1<<q) is qubit q, so qubit 0 is the
//     least significant bit.
//   - All rotations follow R_P(θ) = exp(−i·θ/2·P); two-qubit rotations use
//     the full Pauli word as generator, e.g. RZZ(θ) = exp(−i·θ/2·Z⊗Z).
//   - Gates mutate the state in place and return the state for chaining.
//
// Errors vs panics:
//
//	New validates the register size and returns an error. Gate methods
//	panic on register indices outside [0, Qubits()) — a wrong wire index in
//	a fixed circuit is a programmer error, treated the way gonum/mat treats
//	shape violations.
//
// Complexity: every gate is O(2^n) time, O(1) extra space (H excepted,
// which works pairwise in place as well); ExpectZ is O(2^n).
package qsim
