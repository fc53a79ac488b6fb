package convergence

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats aggregates the final costs of repeated independent runs.
// Mean, StdDev, Min and Max are computed over the finite values only;
// Infeasible counts the runs that never produced a finite cost.
type Stats struct {
	Runs       int
	Infeasible int
	Mean       float64
	StdDev     float64
	Min        float64
	Max        float64
}

// Aggregate computes Stats for values. With fewer than two finite values the
// standard deviation is 0; with none, Mean/Min/Max are +Inf.
func Aggregate(values []float64) Stats {
	s := Stats{Runs: len(values)}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			s.Infeasible++
			continue
		}
		finite = append(finite, v)
	}

	if len(finite) == 0 {
		s.Mean, s.Min, s.Max = math.Inf(1), math.Inf(1), math.Inf(1)
		return s
	}

	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	if len(finite) == 1 {
		s.Mean = finite[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)

	return s
}
