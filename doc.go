// Package antcolony is a small toolkit of ant colony optimizers: a
// pheromone-trail solver for the travelling salesman problem and an
// archive-based colony (ACOR) for continuous minimization, with the
// Schwefel function as its reference benchmark.
//
// What is inside?
//
//   - tsp: generic city graph, distance model, pheromone field and the
//     colony that builds and reinforces tours
//   - continuous: solution archive, rank weights and the sampling colony
//   - roulette: fitness-proportional selection wheel shared by both
//   - matrix: dense float64 matrices for distances and pheromone
//   - convergence: best-so-far histories and their summaries
//
// Around the solvers:
//
//	graphjson/   adjacency JSON loader and the built-in 18-city graph
//	config/      INI run configuration
//	experiment/  configured runs wrapped as reports
//	report/      JSON documents and the text convergence summary
//	chart/       convergence line charts (PNG or SVG)
//	cmd/aco/          command-line front end
//	cmd/aco-lambda/   AWS Lambda function URL front end
//
// Both colonies are deterministic for a fixed seed, whatever the number of
// worker goroutines.
//
// Quick ASCII example:
//
//	    A──10──B
//	    │ ╲  ╱ │
//	   10  15  10
//	    │ ╱  ╲ │
//	    D──10──C
//
//	the shortest closed tour A→B→C→D→A costs 40.
//
//	go install github.com/katalvlaran/antcolony/cmd/aco@latest
package antcolony
