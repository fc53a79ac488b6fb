package tsp_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/katalvlaran/antcolony/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_IndexOrder checks first-insertion indexing through edges.
func TestGraph_IndexOrder(t *testing.T) {
	g := tsp.NewGraph[string]()
	require.NoError(t, g.AddEdge("C", "A", 3))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.Equal(t, 2, g.AddCity("B"))

	require.Equal(t, []string{"C", "A", "B"}, g.Cities())
	i, ok := g.Index("A")
	require.True(t, ok)
	require.Equal(t, 1, i)
	_, ok = g.Index("Z")
	require.False(t, ok)

	c, ok := g.City(2)
	require.True(t, ok)
	require.Equal(t, "B", c)
	_, ok = g.City(3)
	require.False(t, ok)
}

// TestGraph_EdgeValidation covers self-loops and invalid distances.
func TestGraph_EdgeValidation(t *testing.T) {
	g := tsp.NewGraph[string]()
	require.ErrorIs(t, g.AddEdge("A", "A", 1), tsp.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge("A", "B", -1), tsp.ErrInvalidWeight)
	require.ErrorIs(t, g.AddEdge("A", "B", math.NaN()), tsp.ErrInvalidWeight)
	require.ErrorIs(t, g.AddEdge("A", "B", math.Inf(-1)), tsp.ErrInvalidWeight)
	require.Zero(t, g.Len(), "rejected edges must not register cities")

	require.NoError(t, g.AddEdge("A", "B", math.Inf(1)))
	require.NoError(t, g.AddEdge("A", "B", 5)) // last write wins
	d, ok := g.Distance("A", "B")
	require.True(t, ok)
	require.Equal(t, 5.0, d)
	_, ok = g.Distance("B", "A")
	require.False(t, ok, "AddEdge is directed")
}

// TestGraph_DistanceModel checks +Inf for absent edges and the zero diagonal.
func TestGraph_DistanceModel(t *testing.T) {
	g := tsp.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.Connect("B", "C", 4))

	dm, err := g.DistanceModel()
	require.NoError(t, err)
	require.Equal(t, 3, dm.Len())
	assert.Equal(t, 0.0, dm.At(0, 0))
	assert.Equal(t, 2.0, dm.At(0, 1))
	assert.True(t, math.IsInf(dm.At(1, 0), 1))
	assert.Equal(t, 4.0, dm.At(1, 2))
	assert.Equal(t, 4.0, dm.At(2, 1))
	assert.True(t, math.IsInf(dm.At(0, 2), 1))

	_, err = tsp.NewGraph[string]().DistanceModel()
	require.ErrorIs(t, err, tsp.ErrEmptyGraph)
}

// TestFromMap_SortedCities checks ascending key order, neighbors included.
func TestFromMap_SortedCities(t *testing.T) {
	g, err := tsp.FromMap(map[int]map[int]float64{
		3: {1: 7},
		2: {3: 1, 5: 2},
	})
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 2, 3, 5}, g.Cities()); diff != "" {
		t.Errorf("Cities (-want +got):\n%s", diff)
	}
	d, ok := g.Distance(3, 1)
	require.True(t, ok)
	require.Equal(t, 7.0, d)

	_, err = tsp.FromMap(map[string]map[string]float64{"a": {"a": 1}})
	require.ErrorIs(t, err, tsp.ErrSelfLoop)
}

// TestNewDistanceModel validates shape and entry checks on raw matrices.
func TestNewDistanceModel(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.NewDistanceModel(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, sq.Set(0, 1, -3))
	_, err = tsp.NewDistanceModel(sq)
	require.ErrorIs(t, err, tsp.ErrInvalidWeight)

	require.NoError(t, sq.Set(0, 1, 3))
	require.NoError(t, sq.Set(1, 1, 9)) // diagonal is forced to 0
	dm, err := tsp.NewDistanceModel(sq)
	require.NoError(t, err)
	require.Equal(t, 0.0, dm.At(1, 1))
	require.Equal(t, 3.0, dm.Cost([]int{0, 1}))
}

// TestTourCost_MatchesModel checks idempotent, matching cost evaluation.
func TestTourCost_MatchesModel(t *testing.T) {
	dm, err := squareGraph(t).DistanceModel()
	require.NoError(t, err)

	for _, order := range [][]int{{0, 1, 2, 3}, {0, 2, 1, 3}, {3, 1, 0, 2}} {
		want := dm.Cost(order)
		got, err := tsp.TourCost(dm.Matrix(), order)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, want, dm.Cost(order), "repeated evaluation must not drift")
	}
	require.Equal(t, 40.0, dm.Cost([]int{0, 1, 2, 3}))
	require.Equal(t, 48.0, dm.Cost([]int{0, 2, 1, 3}))
}

// TestTourCost_Errors covers the TourCost contract.
func TestTourCost_Errors(t *testing.T) {
	_, err := tsp.TourCost(nil, []int{0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	m, err := matrix.NewDistance(3)
	require.NoError(t, err)
	_, err = tsp.TourCost(m, nil)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.TourCost(m, []int{0, 3})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	cost, err := tsp.TourCost(m, []int{0, 1, 2})
	require.NoError(t, err)
	require.True(t, math.IsInf(cost, 1), "absent edges make the tour infinite")

	neg, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, neg.Set(0, 1, -1))
	_, err = tsp.TourCost(neg, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.TourCost(rect, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestValidateTour covers permutation checks.
func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{2, 0, 1}, 3))
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1}, 3), tsp.ErrDimensionMismatch)
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 1}, 3), tsp.ErrDimensionMismatch)
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 3}, 3), tsp.ErrDimensionMismatch)
	require.ErrorIs(t, tsp.ValidateTour(nil, 0), tsp.ErrDimensionMismatch)
}

// TestPheromoneField covers initialization, evaporation, floor and deposit.
func TestPheromoneField(t *testing.T) {
	_, err := tsp.NewPheromoneField(0, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	p, err := tsp.NewPheromoneField(4, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.0/16, p.At(1, 2), epsTiny)

	require.NoError(t, p.Evaporate(0.5))
	require.InDelta(t, 1.0/32, p.At(1, 2), epsTiny)

	p.Reinforce([]int{0, 1, 2}, 1)
	require.InDelta(t, 1+1.0/32, p.At(0, 1), epsTiny)
	require.InDelta(t, 1+1.0/32, p.At(1, 0), epsTiny)
	require.InDelta(t, 1+1.0/32, p.At(0, 2), epsTiny, "closing edge deposits too")
	require.InDelta(t, 1.0/32, p.At(0, 3), epsTiny)

	floored, err := tsp.NewPheromoneField(2, 0.2)
	require.NoError(t, err)
	require.Equal(t, 0.25, floored.At(0, 1))
	require.NoError(t, floored.Evaporate(1))
	require.Equal(t, 0.2, floored.At(0, 1))
	require.Equal(t, 0.2, floored.Matrix().Min())
}
