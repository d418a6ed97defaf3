// Package zerosum builds and evaluates a bias-invariant quantum model for a
// symmetric three-player zero-sum game.
//
// 🚀 What is zerosum?
//
//	A small, deterministic numeric library around one learning problem:
//	three players play rock-paper-scissors with per-player "special"
//	actions, a referee pays out ±1 probabilistically, and a model must
//	learn the three marginal payoff distributions from strategy matrices
//	while structurally guaranteeing the game's zero-sum constraint
//	E(y0)+E(y1)+E(y2) = 0 for every parameter setting.
//
// The module is organized into four subpackages:
//
//	game/   — rule matrices, strategy sampling, payoff probabilities and
//	          labeled dataset generation (seeded, reproducible)
//	qsim/   — a minimal statevector engine: exactly the gate set the
//	          model needs (H, RY, RZ, CNOT, RXX, RYY, RZZ) plus ⟨Z⟩ readout
//	ansatz/ — the bias-invariant circuit ansatz whose generators commute
//	          with Z0+Z1+Z2, and an unconstrained generic baseline with
//	          identical data encoding
//	train/  — negative log-likelihood, marginal KL evaluation, a
//	          first-order Optimizer interface with a reference Adam, and
//	          the training loop
//
// ✨ Guarantees:
//
//   - Deterministic: every sampling function takes an explicit seed or
//     RNG; same seed ⇒ identical datasets and identical training runs
//   - Invariant by construction: the biased ansatz satisfies
//     Σ_k (2·p_k − 1) = 0 for all parameters, not just trained ones
//   - Pure Go numerics: gonum for matrices, statistics and sampling;
//     no cgo, no hidden global state
//
// Quick start:
//
//	ds, _ := game.GenerateDataset(2000, 666)
//	model, _ := ansatz.NewBiased(ansatz.DefaultConfig())
//	params := ansatz.InitParams(model.ParamCount(), nil)
//
// See cmd/zerosum-train for a complete biased-vs-generic comparison run.
package zerosum
