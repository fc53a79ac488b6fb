// Package tsp_test holds helpers shared across the tsp test files.
package tsp_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/antcolony/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed used wherever a test needs reproducibility.
	seedDet = 42

	// epsTiny is the tolerance for exact-arithmetic comparisons.
	epsTiny = 1e-12
)

// squareGraph is the 4-city cycle 1-2-3-4 (10 each) with both diagonals (14).
// The optimal tour costs 40.
func squareGraph(t *testing.T) *tsp.Graph[string] {
	t.Helper()
	g := tsp.NewGraph[string]()
	for _, e := range []struct {
		a, b string
		d    float64
	}{
		{"1", "2", 10}, {"2", "3", 10}, {"3", "4", 10}, {"4", "1", 10},
		{"1", "3", 14}, {"2", "4", 14},
	} {
		require.NoError(t, g.Connect(e.a, e.b, e.d))
	}

	return g
}

// circleGraph places n cities on a slightly rippled circle and connects
// every pair with its Euclidean distance.
func circleGraph(t *testing.T, n int) *tsp.Graph[int] {
	t.Helper()
	var (
		xs = make([]float64, n)
		ys = make([]float64, n)
		i  int
		j  int
	)
	for i = 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.05*float64(i%3)
		xs[i], ys[i] = r*math.Cos(th), r*math.Sin(th)
	}

	g := tsp.NewGraph[int]()
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			require.NoError(t, g.Connect(i, j, math.Hypot(xs[i]-xs[j], ys[i]-ys[j])))
		}
	}

	return g
}

// requirePermutation asserts that route visits each of the n cities once.
func requirePermutation[C comparable](t *testing.T, route []C, n int) {
	t.Helper()
	require.Len(t, route, n)
	seen := make(map[C]bool, n)
	for _, c := range route {
		require.Falsef(t, seen[c], "city %v visited twice", c)
		seen[c] = true
	}
}

// cityName renders an int city as the string key used by string graphs.
func cityName(i int) string { return strconv.Itoa(i) }
