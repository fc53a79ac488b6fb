package tsp

import (
	"fmt"

	"github.com/katalvlaran/antcolony/matrix"
)

// PheromoneField holds the learned desirability τ(i,j) of every edge.
// Entries start at 1/n² and never become negative.
type PheromoneField struct {
	m     *matrix.Dense
	rows  [][]float64
	floor float64
}

// NewPheromoneField returns an n×n field filled with max(1/n², floor).
func NewPheromoneField(n int, floor float64) (*PheromoneField, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrDimensionMismatch, n)
	}
	if floor < 0 {
		floor = 0
	}
	initial := 1 / float64(n*n)
	if initial < floor {
		initial = floor
	}
	m, err := matrix.NewFilled(n, n, initial)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i], _ = m.Row(i)
	}

	return &PheromoneField{m: m, rows: rows, floor: floor}, nil
}

// At returns τ(i,j).
func (p *PheromoneField) At(i, j int) float64 { return p.rows[i][j] }

// Evaporate multiplies every entry by (1−rho), then lifts entries below
// the floor back to it.
// Complexity: O(n²).
func (p *PheromoneField) Evaporate(rho float64) error {
	if err := p.m.Scale(1 - rho); err != nil {
		return err
	}
	if p.floor == 0 {
		return nil
	}

	return p.m.Apply(func(_, _ int, v float64) float64 {
		if v < p.floor {
			return p.floor
		}
		return v
	})
}

// Reinforce adds amount to both directions of every edge of the closed
// tour order, including the closing edge.
// Complexity: O(len(order)).
func (p *PheromoneField) Reinforce(order []int, amount float64) {
	n := len(order)
	if n < 2 {
		return
	}
	var i, u, v int
	for i = 0; i < n; i++ {
		u = order[i]
		v = order[(i+1)%n]
		p.rows[u][v] += amount
		p.rows[v][u] += amount
	}
}

// Matrix returns a snapshot of the field.
func (p *PheromoneField) Matrix() *matrix.Dense {
	return p.m.Clone().(*matrix.Dense)
}
