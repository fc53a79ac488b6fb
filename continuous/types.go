package continuous

import (
	"errors"
	"slices"

	"github.com/katalvlaran/antcolony/convergence"
)

// Sentinel errors for colony configuration.
var (
	// ErrBadDimension is returned for a non-positive problem dimension.
	ErrBadDimension = errors.New("continuous: dimension must be >= 1")

	// ErrBadArchiveSize is returned for an archive capacity below 1.
	ErrBadArchiveSize = errors.New("continuous: archive size must be >= 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("continuous: invalid option supplied")
)

// Candidate is one evaluated point of the search box.
type Candidate struct {
	X    []float64
	Cost float64
}

// Clone returns a deep copy of c.
func (c Candidate) Clone() Candidate {
	return Candidate{X: slices.Clone(c.X), Cost: c.Cost}
}

// Result holds the outcome of Colony.Solve.
type Result struct {
	// X is the best vector found and Cost its objective value.
	X    []float64
	Cost float64

	// History starts with the best cost of the initial archive and then
	// holds the best cost after every iteration (iterations+1 entries).
	History convergence.History

	// Archive is the final archive, best first.
	Archive []Candidate
}

// IterationInfo is handed to the OnIteration hook after every iteration.
type IterationInfo struct {
	Iteration int
	BestCost  float64

	// Archive is the archive after the merge, best first (copies).
	Archive []Candidate

	// Generated are the vectors built by the ants this iteration (copies).
	Generated []Candidate
}

func cloneAll(cs []Candidate) []Candidate {
	out := make([]Candidate, len(cs))
	for i := range cs {
		out[i] = cs[i].Clone()
	}

	return out
}
