package tsp

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/antcolony/matrix"
)

// Graph collects cities and directed edge distances before a colony is built.
// Cities receive dense indices in first-insertion order; an edge registers
// both endpoints. Re-adding an edge overwrites its distance.
//
// A Graph is not safe for concurrent mutation.
type Graph[C comparable] struct {
	cities []C
	index  map[C]int
	adj    []map[int]float64
}

// NewGraph returns an empty graph.
func NewGraph[C comparable]() *Graph[C] {
	return &Graph[C]{index: make(map[C]int)}
}

// AddCity registers c if absent and returns its index.
// Complexity: O(1) amortized.
func (g *Graph[C]) AddCity(c C) int {
	if i, ok := g.index[c]; ok {
		return i
	}
	i := len(g.cities)
	g.cities = append(g.cities, c)
	g.index[c] = i
	g.adj = append(g.adj, make(map[int]float64))

	return i
}

// AddEdge sets the directed distance from→to.
// Returns ErrSelfLoop when from == to, ErrInvalidWeight for NaN, negative
// or -Inf distances. +Inf is accepted and means "no usable edge".
func (g *Graph[C]) AddEdge(from, to C, distance float64) error {
	if from == to {
		return fmt.Errorf("%w: %v", ErrSelfLoop, from)
	}
	if math.IsNaN(distance) || distance < 0 {
		return fmt.Errorf("%w: %v→%v = %g", ErrInvalidWeight, from, to, distance)
	}
	u := g.AddCity(from)
	v := g.AddCity(to)
	g.adj[u][v] = distance

	return nil
}

// Connect sets the same distance in both directions.
func (g *Graph[C]) Connect(a, b C, distance float64) error {
	if err := g.AddEdge(a, b, distance); err != nil {
		return err
	}

	return g.AddEdge(b, a, distance)
}

// Len returns the number of cities.
func (g *Graph[C]) Len() int {
	if g == nil {
		return 0
	}

	return len(g.cities)
}

// Cities returns the cities in index order.
func (g *Graph[C]) Cities() []C {
	return slices.Clone(g.cities)
}

// Index returns the dense index of c.
func (g *Graph[C]) Index(c C) (int, bool) {
	i, ok := g.index[c]

	return i, ok
}

// City returns the city at index i.
func (g *Graph[C]) City(i int) (C, bool) {
	var zero C
	if i < 0 || i >= len(g.cities) {
		return zero, false
	}

	return g.cities[i], true
}

// Distance returns the stored from→to distance, if any.
func (g *Graph[C]) Distance(from, to C) (float64, bool) {
	u, ok := g.index[from]
	if !ok {
		return 0, false
	}
	v, ok := g.index[to]
	if !ok {
		return 0, false
	}
	d, ok := g.adj[u][v]

	return d, ok
}

// DistanceModel materializes the n×n distance matrix: stored distances,
// 0 on the diagonal, +Inf for every absent edge.
// Complexity: O(n² + E).
func (g *Graph[C]) DistanceModel() (*DistanceModel, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	m, err := matrix.NewDistance(len(g.cities))
	if err != nil {
		return nil, err
	}
	var (
		u, v int
		d    float64
	)
	for u = range g.adj {
		for v, d = range g.adj[u] {
			if err = m.Set(u, v, d); err != nil {
				return nil, fmt.Errorf("%w: %v→%v: %w", ErrInvalidWeight, g.cities[u], g.cities[v], err)
			}
		}
	}

	return newDistanceModel(m), nil
}

// FromMap builds a graph from a nested adjacency map. Cities (including
// those that only appear as neighbors) are indexed in ascending key order.
func FromMap[C cmp.Ordered](adj map[C]map[C]float64) (*Graph[C], error) {
	keys := make([]C, 0, len(adj))
	seen := make(map[C]struct{}, len(adj))
	for from, row := range adj {
		if _, ok := seen[from]; !ok {
			seen[from] = struct{}{}
			keys = append(keys, from)
		}
		for to := range row {
			if _, ok := seen[to]; !ok {
				seen[to] = struct{}{}
				keys = append(keys, to)
			}
		}
	}
	slices.Sort(keys)

	g := NewGraph[C]()
	for _, c := range keys {
		g.AddCity(c)
	}
	for _, from := range keys {
		row := adj[from]
		for _, to := range keys {
			d, ok := row[to]
			if !ok {
				continue
			}
			if err := g.AddEdge(from, to, d); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
