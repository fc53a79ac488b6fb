// Package tsp - tour construction for a single ant.
//
// An ant walks from the start city, choosing each next city by roulette
// over τ(i,j)^α · (1/d(i,j))^β among the unvisited reachable cities.
//
// Contracts:
//   - Scratch buffers (order, remaining, wheel) are reused across iterations.
//   - A dead end leaves the tour incomplete with cost +Inf.
//   - An ant reads the distance model and the pheromone field only; the
//     field is written by the colony after all ants have finished.
//
// Complexity:
//   - O(n²) weight evaluations plus O(n² log n) for the sorted wheels.
package tsp

import (
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/antcolony/roulette"
)

// ant owns the scratch buffers of one tour construction. Each ant has its
// own RNG stream, so ants may run on separate goroutines.
type ant struct {
	rng       *rand.Rand
	wheel     *roulette.Wheel
	order     []int
	remaining []int
	cost      float64
}

func newAnt(n int) *ant {
	return &ant{
		rng:       rngFromSeed(0),
		wheel:     roulette.NewWheel(n),
		order:     make([]int, 0, n),
		remaining: make([]int, 0, n),
	}
}

// construct builds one tour from start.
//
// Steps:
//  1. Candidates are the unvisited cities in ascending index order.
//  2. Each candidate j with 0 < d(i,j) < +Inf weighs τ^α·(1/d)^β.
//  3. No such candidate ⇒ stop; the tour stays incomplete.
//  4. Zero total weight ⇒ uniform draw over the unvisited cities;
//     otherwise a roulette spin over the weights sorted descending.
//
// Complexity: O(n² log n).
func (a *ant) construct(start int, dist *DistanceModel, tau *PheromoneField, alpha, beta float64) {
	n := dist.Len()
	a.order = append(a.order[:0], start)
	a.remaining = a.remaining[:0]
	for j := 0; j < n; j++ {
		if j != start {
			a.remaining = append(a.remaining, j)
		}
	}

	var (
		cur       = start
		pos, j    int
		d         float64
		reachable bool
	)
	for len(a.remaining) > 0 {
		a.wheel.Reset()
		reachable = false
		for pos, j = range a.remaining {
			d = dist.At(cur, j)
			if d <= 0 || math.IsInf(d, 1) {
				continue
			}
			reachable = true
			a.wheel.Add(pos, math.Pow(tau.At(cur, j), alpha)*math.Pow(1/d, beta))
		}
		if !reachable {
			break
		}

		if a.wheel.Total() == 0 {
			pos = a.rng.Intn(len(a.remaining))
		} else {
			a.wheel.SortDescending()
			pos, _ = a.wheel.Spin(a.rng.Float64())
		}

		cur = a.remaining[pos]
		a.order = append(a.order, cur)
		a.remaining = slices.Delete(a.remaining, pos, pos+1)
	}

	a.cost = math.Inf(1)
	if len(a.order) == n {
		a.cost = dist.Cost(a.order)
	}
}

// complete reports whether the last construction visited every city.
func (a *ant) complete(n int) bool { return len(a.order) == n }
