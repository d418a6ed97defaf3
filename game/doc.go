// Package game defines the three-player rock-paper-scissors variant with
// per-player special actions, and generates labeled synthetic data from it.
//
// 🚀 The game
//
//	Three players each pick rock (R), paper (P) or scissors (S). Each player
//	also owns a "special" action: R for player 0, P for player 1, S for
//	player 2. For each pair of players:
//	  • different actions resolve by cyclic dominance (R>S, S>P, P>R);
//	  • equal actions resolve in favor of the player whose special action
//	    was played; if neither special was played it is a draw.
//	A referee pays each player ±1 probabilistically so that
//	E(y_k) = (wins_k − losses_k)/2. Because every pairwise outcome is
//	antisymmetric, the payoffs satisfy E(y0)+E(y1)+E(y2) = 0 — the zero-sum
//	invariant that the whole module is built around.
//
// ✨ What the package provides:
//
//   - RuleMatrices — the canonical pairwise payoff matrices A01, A02, A12
//     (and their negated transposes for the reverse pairings), derived from
//     the rule above rather than hard-coded
//   - SampleStrategyMatrices — uniform row-normalized strategy matrices
//   - PayoffProbabilities — the bilinear map from a strategy matrix to the
//     three win probabilities, with Σ_k (2p_k − 1) = 0 exactly
//   - GenerateDataset — reproducible (X, Y, P) triples from an explicit seed
//
// Determinism:
//
//	No hidden global RNG. Sampling functions accept a *rand.Rand
//	(golang.org/x/exp/rand); GenerateDataset derives decorrelated
//	sub-streams from a single seed, so the same seed always yields the
//	same dataset, independent of call order elsewhere in the process.
//
// Complexity: everything is O(n) in the number of samples with small
// constant factors (3×3 matrices throughout).
package game
