// Package ansatz defines the parametrized circuit models that map a strategy
// matrix and a parameter tensor to the three marginal payoff distributions.
//
// 🚀 Two models, one encoding
//
//	Biased  — the bias-invariant ansatz. Every generator in the circuit
//	          commutes with the readout invariant Z0+Z1+Z2, and the input
//	          preparation places the register on the invariant's zero
//	          surface, so Σ_k (2·p_k − 1) = 0 holds for EVERY parameter
//	          setting and every input. The zero-sum rule is a structural
//	          property of the model class, not something training must find.
//	Generic — an unconstrained baseline with the same data encoding and a
//	          comparable parameter count, built from strongly-entangling
//	          blocks (per-qubit ZYZ rotations plus a CNOT ring). It carries
//	          no invariant guarantee.
//
// Circuit structure of the biased model (Blocks=B, Layers=L):
//
//	|0⟩ ─ H ─ RY(α)    ┐
//	|0⟩ ─ H ─ RY(α+π)  ├ input preparation: ⟨Z0+Z1+Z2⟩ = 0 for every α
//	|0⟩ ─ H ──────────-┘
//	then L repetitions of
//	    U(θ) ─ S¹(x) ─ U(θ) ─ S²(x)
//	and one final U(θ), where
//	    U(θ)  = B blocks of { RZ per qubit; RZZ on the 3 pairs;
//	            exchange rotation exp(−i·θ/2·(XX+YY+ZZ)) per pair }
//	    S¹(x) = RZ(x1[q]) per qubit,    x1 = (π/2)·diag(X)
//	    S²(x) = RZZ(x2[i]·x2[j]) per pair,
//	            x2 = (π/2)·(X01−X02, X12−X10, X20−X21)
//
// Readout measures ⟨Z_k⟩ per qubit; probabilities are p_k = (1+⟨Z_k⟩)/2.
//
// Parameters are a flat []float64 in (row, block, gate) order with 9 gate
// slots per (row, block); see Params. Evaluate is a pure function of
// (params, X) — no device objects, no cached configuration — so callers may
// batch or parallelize over inputs freely.
package ansatz
