// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage shared by the colony
// engines: the distance model and the pheromone field of the TSP engine are
// both n×n *Dense values.
//
// Dense is row-major over a single flat slice. Public indexers (At/Set) are
// bounds-checked and return sentinel errors instead of panicking; engine hot
// loops read whole rows through Row, which aliases the backing storage.
//
// Numeric policy:
//   - NewDense matrices reject NaN and ±Inf on Set (finite-only).
//   - NewDistance matrices additionally accept +Inf, the "no edge" marker of
//     a distance matrix. NaN and -Inf stay rejected.
//
// Complexity:
//   - Rows, Cols, At, Set, Row: O(1).
//   - Clone, Fill, Scale, Apply, Do, Min: O(r*c).
package matrix
