// Package continuous minimizes a real-valued objective over a bounded box
// with an archive-based ant colony (ACO for continuous domains, ACOR).
//
// The colony keeps a cost-sorted archive of the k best vectors found so far.
// Every iteration each ant:
//
//  1. picks a guide from the archive by roulette over rank weights
//     w_i ∝ exp(−i² / (2q²k²)), walked in archive order;
//  2. for each dimension j samples x_j ~ N(g_j, σ_j), where
//     σ_j = ξ · mean |g_j − o_j| over the other archive members
//     (k = 1 ⇒ σ_j = ξ·(upper−lower)/10), floored at MinSpread;
//  3. clamps x into [lower, upper] and evaluates it.
//
// New vectors are merged into the archive, which is stably re-sorted and
// truncated back to k entries.
//
// The default objective is the Schwefel benchmark,
// f(x) = 418.9829·d − Σ xᵢ·sin(√|xᵢ|), with its global minimum ≈ 0 at
// xᵢ ≈ 420.9687.
//
// Determinism follows the tsp package: the engine RNG is seeded once and
// every ant draws from its own stream derived in ant order, so a seed fixes
// the result for any worker count.
package continuous
