// Package train fits the circuit models to generated game data and
// evaluates them against the analytic marginals.
//
// 🚀 What the package provides:
//
//   - NegLogLikelihood — the training objective: mean negative log
//     probability of the observed ±1 labels under the model's marginals,
//     floored at ProbFloor so the loss stays finite
//   - KLMarginals / AverageKL — evaluation: mean forward KL divergence
//     between the true two-outcome marginals and the model's
//   - Optimizer — a first-order optimizer interface (Init/Update/Apply,
//     optax-style split between computing and applying updates) with a
//     reference Adam implementation
//   - Gradient — a central finite-difference gradient; automatic
//     differentiation is an external collaborator, so Fit accepts any
//     GradientFunc and uses finite differences only as the default
//   - Fit — the full loop: gradient → optimizer update → apply, with
//     per-step loss and test-KL history in a uuid-tagged Report
//
// Determinism:
//
//	Fit mutates nothing it is handed: parameters are cloned up front and the
//	loop is a pure fold over steps. Given the same model, data and initial
//	parameters, a run reproduces exactly (the RunID is the only fresh value).
package train
