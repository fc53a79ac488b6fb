// SPDX-License-Identifier: MIT

// Package matrix: Dense is a concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Method names used to wrap errors with context.
const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRow   = "Row"
	ctxFill  = "Fill"
	ctxScale = "Scale"
	ctxApply = "Apply"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c

	// allowPosInf admits +Inf on writes (distance policy); NaN and -Inf are
	// always rejected.
	allowPosInf bool
}

// NewDense creates an r×c Dense matrix initialized to zeros with the
// finite-only numeric policy.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c Dense matrix with every entry set to v.
// v must be finite.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(v); err != nil {
		return nil, err
	}

	return m, nil
}

// NewDistance creates an n×n distance matrix: +Inf everywhere off the
// diagonal ("no edge"), 0 on the diagonal. Set accepts +Inf on the result.
// Complexity: O(n²).
func NewDistance(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	m.allowPosInf = true

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				m.data[i*n+j] = math.Inf(1)
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// admits reports whether v may be stored under the matrix numeric policy.
func (m *Dense) admits(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return false
	}
	if math.IsInf(v, 1) {
		return m.allowPosInf
	}

	return true
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf when v violates the policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !m.admits(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice aliasing the backing storage. Writes through
// the slice bypass the numeric policy; callers own that responsibility.
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Fill sets every element to v.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) error {
	if !m.admits(v) {
		return denseErrorf(ctxFill, 0, 0, ErrNaNInf)
	}
	var k int
	for k = range m.data {
		m.data[k] = v
	}

	return nil
}

// Scale multiplies every element by f in place.
// f must be finite.
// Complexity: O(r*c).
func (m *Dense) Scale(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return denseErrorf(ctxScale, 0, 0, ErrNaNInf)
	}
	var k int
	for k = range m.data {
		m.data[k] *= f
	}

	return nil
}

// Do calls f for every element in row-major order until f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Elements written before a policy violation remain updated.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var (
		i, j, base int
		nv         float64
	)
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if !m.admits(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Min returns the smallest element.
// Complexity: O(r*c).
func (m *Dense) Min() float64 {
	lo := m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo
}

// Clone returns a deep copy with the same numeric policy.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, allowPosInf: m.allowPosInf}
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
func (m *Dense) String() string {
	var (
		b          strings.Builder
		i, j, base int
	)
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
