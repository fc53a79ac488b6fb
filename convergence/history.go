// Package convergence records and summarizes the best-so-far cost of an
// iterative optimizer.
//
// A History holds one entry per recorded step (the best cost known at the
// end of that step). Engines only ever record a value that is less than or
// equal to the previous one, so a History is non-increasing by construction.
// Entries may be +Inf while no feasible solution has been found yet.
package convergence

import "math"

// History is the ordered sequence of best-so-far costs.
type History []float64

// Sample is one sampled point of a History; Iteration is 1-based.
type Sample struct {
	Iteration int
	Value     float64
}

// Summary condenses a History the way progress reports present it.
type Summary struct {
	Initial       float64
	Final         float64
	Improvement   float64
	BestIteration int
	BestValue     float64
	Samples       []Sample
}

// defaultSampleCount is the number of evenly spaced points in a Summary.
const defaultSampleCount = 10

// Record appends the best cost known at the end of a step.
func (h *History) Record(best float64) {
	*h = append(*h, best)
}

// Len returns the number of recorded steps.
func (h History) Len() int { return len(h) }

// Clone returns an independent copy.
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	copy(out, h)

	return out
}

// Initial returns the first recorded value.
func (h History) Initial() (float64, bool) {
	if len(h) == 0 {
		return math.Inf(1), false
	}

	return h[0], true
}

// Final returns the last recorded value.
func (h History) Final() (float64, bool) {
	if len(h) == 0 {
		return math.Inf(1), false
	}

	return h[len(h)-1], true
}

// Improvement returns Initial − Final; 0 when either end is not finite.
func (h History) Improvement() float64 {
	first, ok := h.Initial()
	if !ok {
		return 0
	}
	last, _ := h.Final()
	if math.IsInf(first, 0) || math.IsInf(last, 0) {
		return 0
	}

	return first - last
}

// Best returns the 1-based iteration at which the minimum was first reached
// and the minimum itself. Iteration is 0 for an empty History.
func (h History) Best() (iteration int, value float64) {
	value = math.Inf(1)
	for i, v := range h {
		if v < value {
			value = v
			iteration = i + 1
		}
	}
	if iteration == 0 && len(h) > 0 {
		iteration = 1
	}

	return iteration, value
}

// IsNonIncreasing reports whether every entry is <= its predecessor.
func (h History) IsNonIncreasing() bool {
	for i := 1; i < len(h); i++ {
		if h[i] > h[i-1] {
			return false
		}
	}

	return true
}

// Samples returns every step-th entry starting at the first one, where
// step = max(1, len/count).
func (h History) Samples(count int) []Sample {
	if len(h) == 0 {
		return nil
	}
	if count <= 0 {
		count = defaultSampleCount
	}
	step := len(h) / count
	if step < 1 {
		step = 1
	}

	out := make([]Sample, 0, len(h)/step+1)
	for i := 0; i < len(h); i += step {
		out = append(out, Sample{Iteration: i + 1, Value: h[i]})
	}

	return out
}

// Summarize builds a Summary with ten evenly spaced samples.
func (h History) Summarize() Summary {
	first, _ := h.Initial()
	last, _ := h.Final()
	it, best := h.Best()

	return Summary{
		Initial:       first,
		Final:         last,
		Improvement:   h.Improvement(),
		BestIteration: it,
		BestValue:     best,
		Samples:       h.Samples(defaultSampleCount),
	}
}
