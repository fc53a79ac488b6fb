package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// DistanceModel is an immutable n×n distance matrix. Absent edges are +Inf,
// the diagonal is 0, and entries may be asymmetric.
type DistanceModel struct {
	m    *matrix.Dense
	rows [][]float64 // row views into m, for hot-path reads
}

// newDistanceModel wraps m without copying; m must be square and valid.
func newDistanceModel(m *matrix.Dense) *DistanceModel {
	n := m.Rows()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i], _ = m.Row(i)
	}

	return &DistanceModel{m: m, rows: rows}
}

// NewDistanceModel copies a square matrix into a DistanceModel.
// Entries must be non-negative or +Inf; the diagonal is forced to 0.
// Complexity: O(n²).
func NewDistanceModel(src matrix.Matrix) (*DistanceModel, error) {
	if src == nil {
		return nil, matrix.ErrNilMatrix
	}
	n := src.Rows()
	if n != src.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", matrix.ErrNonSquare, n, src.Cols())
	}
	m, err := matrix.NewDistance(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if d, err = src.At(i, j); err != nil {
				return nil, err
			}
			if math.IsNaN(d) || d < 0 {
				return nil, fmt.Errorf("%w: (%d,%d) = %g", ErrInvalidWeight, i, j, d)
			}
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
		}
	}

	return newDistanceModel(m), nil
}

// Len returns the number of cities.
func (dm *DistanceModel) Len() int { return len(dm.rows) }

// At returns d(i,j). Indices must be in range.
func (dm *DistanceModel) At(i, j int) float64 { return dm.rows[i][j] }

// Cost returns the closed-tour cost of order, including the edge back to
// order[0]. Any +Inf edge makes the cost +Inf. Indices must be in range.
// Complexity: O(len(order)).
func (dm *DistanceModel) Cost(order []int) float64 {
	if len(order) == 0 {
		return 0
	}
	var (
		sum  float64
		i    int
		last = len(order) - 1
	)
	for i = 0; i < last; i++ {
		sum += dm.rows[order[i]][order[i+1]]
	}

	return sum + dm.rows[order[last]][order[0]]
}

// Matrix returns a copy of the underlying distances.
func (dm *DistanceModel) Matrix() *matrix.Dense {
	return dm.m.Clone().(*matrix.Dense)
}
