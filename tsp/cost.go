package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// TourCost sums dist along the closed tour order, including the edge from
// the last city back to the first.
//
// Contract:
//   - dist must be square and order non-empty with indices in range
//     (ErrDimensionMismatch otherwise).
//   - NaN entries yield ErrInvalidWeight, negative ones ErrNegativeWeight.
//   - +Inf entries are absent edges: the cost is +Inf with a nil error.
//
// Complexity: O(len(order)).
func TourCost(dist matrix.Matrix, order []int) (float64, error) {
	if dist == nil || len(order) == 0 {
		return 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	if n != dist.Cols() {
		return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, matrix.ErrNonSquare)
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
		last = len(order) - 1
	)
	for i = 0; i <= last; i++ {
		u = order[i]
		if i == last {
			v = order[0]
		} else {
			v = order[i+1]
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) {
			return 0, ErrInvalidWeight
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return sum, nil
}
