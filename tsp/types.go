package tsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/antcolony/convergence"
	"github.com/katalvlaran/antcolony/matrix"
)

// Sentinel errors for graph building and colony configuration.
var (
	// ErrEmptyGraph is returned when a colony is built over a nil or empty graph.
	ErrEmptyGraph = errors.New("tsp: graph has no cities")

	// ErrInvalidWeight is returned for NaN, negative or -Inf edge distances.
	ErrInvalidWeight = errors.New("tsp: invalid edge distance")

	// ErrSelfLoop is returned when an edge connects a city to itself.
	ErrSelfLoop = errors.New("tsp: self-loop edge")

	// ErrUnknownCity is returned when a start city is not part of the graph.
	ErrUnknownCity = errors.New("tsp: unknown city")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tsp: invalid option supplied")

	// ErrDimensionMismatch indicates a tour or matrix whose shape does not
	// match the problem size.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight is returned by TourCost for a negative matrix entry.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")
)

// Tour is one ant's closed route over city indices. Order lists each city
// once; the edge Order[len-1]→Order[0] closes the cycle implicitly.
type Tour struct {
	Order []int
	Cost  float64
}

// Clone returns a deep copy of t.
func (t Tour) Clone() Tour {
	order := make([]int, len(t.Order))
	copy(order, t.Order)

	return Tour{Order: order, Cost: t.Cost}
}

// Result holds the outcome of Colony.Solve.
type Result[C comparable] struct {
	// Route is the best tour translated back to city keys, starting at the
	// start city. nil when Found is false.
	Route []C

	// Cost is the closed-tour cost of Route; +Inf when Found is false.
	Cost float64

	// Found reports whether any valid tour with finite cost was built.
	Found bool

	// History holds the best cost known at the end of every iteration.
	History convergence.History
}

// IterationInfo is handed to the OnIteration hook after every iteration.
type IterationInfo struct {
	// Iteration is the 0-based iteration index.
	Iteration int

	// BestCost is the global best after this iteration (+Inf if none yet).
	BestCost float64

	// Constructed is the number of ants that ran this iteration.
	Constructed int

	// Tours are the valid tours of this iteration (copies).
	Tours []Tour

	// Pheromone is a snapshot of the field after the update.
	Pheromone *matrix.Dense
}

// notFound is the absence sentinel returned when no finite tour exists.
func notFound[C comparable](h convergence.History) Result[C] {
	return Result[C]{Cost: math.Inf(1), History: h}
}
