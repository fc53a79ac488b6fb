// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDistance(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias still matches

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNumericPolicy checks the finite-only policy and the +Inf distance exception.
func TestNumericPolicy(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.NaN()), matrix.ErrNaNInf)

	d, err := matrix.NewDistance(3)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, math.Inf(1)))
	require.ErrorIs(t, d.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, d.Set(0, 1, math.NaN()), matrix.ErrNaNInf)

	// Fresh distance matrix: zero diagonal, +Inf elsewhere.
	d.Do(func(i, j int, v float64) bool {
		if i == j {
			require.Zero(t, v)
		} else {
			require.True(t, math.IsInf(v, 1))
		}
		return true
	})

	// Clone keeps the policy.
	cp := d.Clone()
	require.NoError(t, cp.Set(1, 2, math.Inf(1)))
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7.89}, row)
}

// TestRowAliasesStorage ensures Row returns a view, not a copy.
func TestRowAliasesStorage(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 5

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
	require.Equal(t, 2, cap(row), "row view must not reach into the next row")
}

// TestFillScaleMin exercises the bulk operations used by the pheromone field.
func TestFillScaleMin(t *testing.T) {
	m, err := matrix.NewFilled(3, 3, 0.25)
	require.NoError(t, err)
	require.Equal(t, 0.25, m.Min())

	require.NoError(t, m.Scale(0.5))
	require.Equal(t, 0.125, m.Min())
	require.NoError(t, m.Set(2, 2, 0.01))
	require.Equal(t, 0.01, m.Min())

	require.ErrorIs(t, m.Scale(math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(math.NaN()), matrix.ErrNaNInf)

	_, err = matrix.NewFilled(2, 2, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestApply checks in-place mapping and its policy guard.
func TestApply(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Apply(func(i, j int, _ float64) float64 { return float64(i*2 + j) }))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	err = m.Apply(func(_, _ int, _ float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 9.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
	require.Equal(t, "[1, 0]\n[0, 0]\n", m.String())
}
