// Package tsp solves the Travelling Salesman Problem with an Ant System
// colony: ants build tours guided by a learned pheromone field and a
// 1/distance heuristic, and every valid tour of an iteration reinforces the
// edges it used.
//
// Building blocks:
//
//   - Graph[C]: adjacency builder over any comparable city key; cities
//     get dense indices [0,n) in first-insertion order.
//   - DistanceModel: n×n cost matrix, +Inf for absent edges, 0 diagonal.
//   - PheromoneField: n×n desirability matrix, 1/n² initially; evaporated by
//     (1−ρ) and reinforced symmetrically by Q/cost every iteration.
//   - Colony[C]: the engine. Solve / SolveFrom run the fixed iteration
//     budget and return the best route, its cost and the convergence history.
//
// Tour construction (per ant):
//
//	from the current city i, every unvisited city j with 0 < d(i,j) < +Inf
//	gets weight τ(i,j)^α · (1/d(i,j))^β; the next city is drawn by roulette
//	over the weights sorted descending. If no unvisited city is reachable the
//	ant stops and its incomplete tour is discarded; if reachable cities carry
//	zero total weight the next city is drawn uniformly.
//
// Determinism:
//
//	The engine RNG is seeded once per Colony (seed 0 ⇒ a fixed default).
//	Before each iteration one sub-stream per ant is derived from it in ant
//	order, so a given seed yields identical results for any worker count.
//
// Complexity:
//   - One tour: O(n² log n) (n steps, each weighting and sorting ≤ n cities).
//   - One iteration: O(ants · n² log n + n²).
//
// Example:
//
//	g := tsp.NewGraph[string]()
//	_ = g.Connect("A", "B", 10)
//	...
//	colony, err := tsp.NewColony(g, tsp.WithAnts(40), tsp.WithIterations(50))
//	res, err := colony.SolveFrom("A")
package tsp
