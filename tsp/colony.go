// Package tsp - the Ant System engine.
//
// Colony runs a fixed number of iterations. Each one builds every ant's
// tour, keeps the complete ones, updates the global best on strict
// improvement and then evaporates and reinforces the pheromone field.
//
// Design:
//   - Deterministic: per-ant streams derived from the engine seed.
//   - Opt-in parallelism: WithWorkers fans construction out on an errgroup;
//     the pheromone update stays sequential.
//   - Cancellation: the context is checked once per iteration.
//   - Observability: Info on start/finish, Debug per iteration, and the
//     OnIteration hook with a snapshot of tours and pheromone.
package tsp

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/antcolony/convergence"
)

// Colony is the Ant System engine for one graph. The graph is snapshotted
// at construction; later changes to it are not seen.
//
// A Colony is not safe for concurrent Solve calls. Each Solve starts from a
// fresh pheromone field and continues the engine RNG stream.
type Colony[C comparable] struct {
	cities []C
	index  map[C]int
	dist   *DistanceModel
	opts   Options
	ants   int
	rng    *rand.Rand
	log    *slog.Logger
}

// NewColony validates opts and prepares an engine over g.
// Returns ErrEmptyGraph for a nil or empty graph and ErrOptionViolation for
// invalid options.
func NewColony[C comparable](g *Graph[C], opts ...Option) (*Colony[C], error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dist, err := g.DistanceModel()
	if err != nil {
		return nil, err
	}

	n := g.Len()
	ants := o.Ants
	if ants <= 0 {
		ants = antsPerCity * n
	}
	index := make(map[C]int, n)
	for c, i := range g.index {
		index[c] = i
	}

	return &Colony[C]{
		cities: g.Cities(),
		index:  index,
		dist:   dist,
		opts:   o,
		ants:   ants,
		rng:    rngFromSeed(o.Seed),
		log:    o.Logger.With(slog.String("component", "tsp")),
	}, nil
}

// Ants returns the effective number of ants per iteration.
func (c *Colony[C]) Ants() int { return c.ants }

// Distances returns the distance model the colony runs on.
func (c *Colony[C]) Distances() *DistanceModel { return c.dist }

// Solve runs the colony from the first city of the graph.
func (c *Colony[C]) Solve() (Result[C], error) {
	return c.solve(0)
}

// SolveFrom runs the colony with every ant starting at start.
// Returns ErrUnknownCity if start is not in the graph.
func (c *Colony[C]) SolveFrom(start C) (Result[C], error) {
	i, ok := c.index[start]
	if !ok {
		return Result[C]{}, fmt.Errorf("%w: %v", ErrUnknownCity, start)
	}

	return c.solve(i)
}

// solve runs the fixed iteration loop.
//
// Per iteration:
//  1. Reseed every ant stream from the engine RNG, in ant order.
//  2. Build all tours (sequentially or on the worker pool).
//  3. Keep the complete tours; replace the global best on strict improvement.
//  4. If any tour is complete: evaporate, then deposit Q/cost per tour.
//  5. Record the global best into the history.
//
// Complexity: O(iterations · ants · n² log n).
func (c *Colony[C]) solve(start int) (Result[C], error) {
	var (
		n       = c.dist.Len()
		o       = c.opts
		began   = time.Now()
		history = make(convergence.History, 0, min(o.Iterations, maxHistoryPrealloc))
		best    = Tour{Cost: math.Inf(1)}
		found   bool
	)

	tau, err := NewPheromoneField(n, o.PheromoneFloor)
	if err != nil {
		return Result[C]{}, err
	}

	ants := make([]*ant, c.ants)
	streams := make([]*rand.Rand, c.ants)
	for a := range ants {
		ants[a] = newAnt(n)
		streams[a] = ants[a].rng
	}
	valid := make([]*ant, 0, c.ants)

	c.log.Info("colony started",
		slog.Int("cities", n),
		slog.Int("ants", c.ants),
		slog.Int("iterations", o.Iterations),
		slog.Float64("alpha", o.Alpha),
		slog.Float64("beta", o.Beta),
		slog.Float64("rho", o.Rho),
		slog.Float64("q", o.Q),
	)

	for it := 0; it < o.Iterations; it++ {
		if err = o.Ctx.Err(); err != nil {
			return Result[C]{}, fmt.Errorf("tsp: iteration %d: %w", it, err)
		}

		reseedStreams(c.rng, streams)
		if err = c.build(ants, start, tau); err != nil {
			return Result[C]{}, err
		}

		valid = valid[:0]
		for _, a := range ants {
			if !a.complete(n) {
				continue
			}
			valid = append(valid, a)
			if a.cost < best.Cost {
				best = Tour{Order: a.order, Cost: a.cost}.Clone()
				found = true
			}
		}

		if len(valid) > 0 {
			if err = tau.Evaporate(o.Rho); err != nil {
				return Result[C]{}, err
			}
			for _, a := range valid {
				if a.cost > 0 && !math.IsInf(a.cost, 1) {
					tau.Reinforce(a.order, o.Q/a.cost)
				}
			}
		}

		history.Record(best.Cost)
		c.log.Debug("iteration",
			slog.Int("iteration", it+1),
			slog.Int("valid", len(valid)),
			slog.Float64("best", best.Cost),
		)

		if o.OnIteration != nil {
			c.notify(it, best.Cost, valid, tau)
		}
	}

	c.log.Info("colony finished",
		slog.Bool("found", found),
		slog.Float64("best", best.Cost),
		slog.Duration("elapsed", time.Since(began)),
	)

	if !found {
		return notFound[C](history), nil
	}
	route := make([]C, len(best.Order))
	for i, v := range best.Order {
		route[i] = c.cities[v]
	}

	return Result[C]{Route: route, Cost: best.Cost, Found: true, History: history}, nil
}

// build runs one construction per ant. With more than one worker the ants
// are spread over an errgroup bounded to Workers goroutines.
func (c *Colony[C]) build(ants []*ant, start int, tau *PheromoneField) error {
	alpha, beta := c.opts.Alpha, c.opts.Beta
	if c.opts.Workers <= 1 {
		for _, a := range ants {
			a.construct(start, c.dist, tau, alpha, beta)
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(c.opts.Workers)
	for _, a := range ants {
		a := a
		g.Go(func() error {
			a.construct(start, c.dist, tau, alpha, beta)
			return nil
		})
	}

	return g.Wait()
}

// notify hands the iteration snapshot to the OnIteration hook.
func (c *Colony[C]) notify(it int, best float64, valid []*ant, tau *PheromoneField) {
	tours := make([]Tour, len(valid))
	for i, a := range valid {
		tours[i] = Tour{Order: a.order, Cost: a.cost}.Clone()
	}
	c.opts.OnIteration(IterationInfo{
		Iteration:   it,
		BestCost:    best,
		Constructed: c.ants,
		Tours:       tours,
		Pheromone:   tau.Matrix(),
	})
}
