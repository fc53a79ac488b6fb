package continuous

import "math"

// Schwefel benchmark constants.
const (
	// SchwefelConstant is the per-dimension offset of the Schwefel function.
	SchwefelConstant = 418.9829

	// SchwefelOptimum is the coordinate of the global minimum in every dimension.
	SchwefelOptimum = 420.9687
)

// Objective maps a point of the search box to the cost being minimized.
// It must be safe for concurrent use when the colony runs several workers.
type Objective func(x []float64) float64

// Schwefel evaluates f(x) = 418.9829·d − Σ xᵢ·sin(√|xᵢ|).
// Complexity: O(d).
func Schwefel(x []float64) float64 {
	var sum float64
	for _, xi := range x {
		sum += xi * math.Sin(math.Sqrt(math.Abs(xi)))
	}

	return SchwefelConstant*float64(len(x)) - sum
}

// evaluate applies obj, mapping NaN to +Inf so archive ordering stays total.
func evaluate(obj Objective, x []float64) float64 {
	v := obj(x)
	if math.IsNaN(v) {
		return math.Inf(1)
	}

	return v
}
