// Package continuous - the ACOR engine.
//
// Colony seeds an archive of k uniform candidates and, for a fixed number
// of iterations, samples new candidates around rank-selected guides, merges
// them into the archive and records the best cost seen.
//
// Design:
//   - Deterministic: per-ant streams derived from the engine seed.
//   - Opt-in parallelism: WithWorkers fans sampling out on an errgroup; the
//     archive merge stays sequential.
//   - Cancellation: the context is checked once per iteration.
package continuous

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/antcolony/convergence"
	"github.com/katalvlaran/antcolony/roulette"
)

// Colony is the archive-based continuous engine.
//
// A Colony is not safe for concurrent Solve calls. Each Solve starts from a
// fresh archive and continues the engine RNG stream.
type Colony struct {
	dim  int
	opts Options
	rng  *rand.Rand
	log  *slog.Logger
}

// NewColony validates the configuration for a dim-dimensional problem.
// Returns ErrBadDimension, ErrBadArchiveSize or ErrOptionViolation.
func NewColony(dim int, opts ...Option) (*Colony, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w (%d)", ErrBadDimension, dim)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Colony{
		dim:  dim,
		opts: o,
		rng:  rngFromSeed(o.Seed),
		log:  o.Logger.With(slog.String("component", "continuous")),
	}, nil
}

// Dimension returns the problem dimension.
func (c *Colony) Dimension() int { return c.dim }

// Solve runs the fixed iteration loop.
//
// Steps:
//  1. Fill the archive with k uniform vectors from the engine RNG.
//  2. Per iteration: compute rank weights once, reseed the ant streams in
//     ant order, sample every ant, track strict improvements in ant order,
//     merge into the archive, re-check the archive head, record the best.
//
// Complexity: O(iterations · ants · d · k + iterations · (k+ants) log(k+ants)).
func (c *Colony) Solve() (Result, error) {
	var (
		o     = c.opts
		began = time.Now()
	)

	arc, err := NewArchive(o.ArchiveSize)
	if err != nil {
		return Result{}, err
	}
	c.seedArchive(arc)

	head, _ := arc.Best()
	best := head.Clone()
	history := make(convergence.History, 0, min(o.Iterations, maxHistoryPrealloc)+1)
	history.Record(best.Cost)

	ants := make([]*ant, o.Ants)
	for a := range ants {
		ants[a] = newAnt(o.ArchiveSize)
	}
	generated := make([]Candidate, o.Ants)

	c.log.Info("colony started",
		slog.Int("dimension", c.dim),
		slog.Int("ants", o.Ants),
		slog.Int("iterations", o.Iterations),
		slog.Int("archive", o.ArchiveSize),
		slog.Float64("q", o.Q),
		slog.Float64("xi", o.Xi),
		slog.Float64("lower", o.Lower),
		slog.Float64("upper", o.Upper),
	)

	for it := 0; it < o.Iterations; it++ {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("continuous: iteration %d: %w", it, err)
		}

		wheel := guideWheel(RankWeights(arc.Len(), o.Q))
		for a := range ants {
			ants[a].rng.Seed(deriveSeed(c.rng.Int63(), uint64(a)))
		}
		if err = c.sampleAll(ants, arc, wheel); err != nil {
			return Result{}, err
		}

		for a := range ants {
			generated[a] = ants[a].out
			if generated[a].Cost < best.Cost {
				best = generated[a].Clone()
			}
		}

		arc.Merge(generated...)
		if head, _ = arc.Best(); head.Cost < best.Cost {
			best = head.Clone()
		}
		history.Record(best.Cost)

		c.log.Debug("iteration",
			slog.Int("iteration", it+1),
			slog.Float64("best", best.Cost),
		)
		if o.OnIteration != nil {
			o.OnIteration(IterationInfo{
				Iteration: it,
				BestCost:  best.Cost,
				Archive:   arc.Candidates(),
				Generated: cloneAll(generated),
			})
		}
	}

	c.log.Info("colony finished",
		slog.Float64("best", best.Cost),
		slog.Duration("elapsed", time.Since(began)),
	)

	return Result{
		X:       best.X,
		Cost:    best.Cost,
		History: history,
		Archive: arc.Candidates(),
	}, nil
}

// seedArchive fills arc with uniform vectors drawn from the engine RNG.
func (c *Colony) seedArchive(arc *Archive) {
	var (
		o     = c.opts
		width = o.Upper - o.Lower
		init  = make([]Candidate, o.ArchiveSize)
		i, j  int
	)
	for i = range init {
		x := make([]float64, c.dim)
		for j = range x {
			x[j] = o.Lower + c.rng.Float64()*width
		}
		init[i] = Candidate{X: x, Cost: evaluate(o.Objective, x)}
	}
	arc.Merge(init...)
}

// sampleAll runs every ant once, on an errgroup when Workers > 1.
func (c *Colony) sampleAll(ants []*ant, arc *Archive, wheel *roulette.Wheel) error {
	o := &c.opts
	if o.Workers <= 1 {
		for _, a := range ants {
			a.sample(arc, wheel, o, c.dim)
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for _, a := range ants {
		a := a
		g.Go(func() error {
			a.sample(arc, wheel, o, c.dim)
			return nil
		})
	}

	return g.Wait()
}
