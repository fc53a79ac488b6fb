package tsp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Default colony parameters.
const (
	DefaultIterations = 100
	DefaultAlpha      = 1.0
	DefaultBeta       = 2.0
	DefaultRho        = 0.5
	DefaultQ          = 100.0

	// antsPerCity sizes the colony when no ant count is given.
	antsPerCity = 10
	// maxHistoryPrealloc bounds the history capacity reserved up front;
	// longer runs grow it by appending.
	maxHistoryPrealloc = 1 << 16
)

// Option configures a Colony via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewColony.
type Option func(*Options)

// Options holds the parameters of a colony run.
type Options struct {
	// Ctx allows cancellation between iterations.
	Ctx context.Context

	// Ants is the number of tours built per iteration; ≤ 0 means 10·n.
	Ants int

	// Iterations is the fixed iteration budget.
	Iterations int

	// Alpha weights the pheromone term, Beta the 1/distance term.
	Alpha, Beta float64

	// Rho is the evaporation rate in [0,1].
	Rho float64

	// Q is the deposit constant; a tour of cost L deposits Q/L per edge.
	Q float64

	// PheromoneFloor is the lower bound kept after evaporation (0 = none).
	PheromoneFloor float64

	// Seed drives the engine RNG; 0 selects a fixed default seed.
	Seed int64

	// Workers > 1 builds tours concurrently on that many goroutines.
	Workers int

	// Logger receives run and iteration records.
	Logger *slog.Logger

	// OnIteration, when set, is called after every iteration.
	OnIteration func(IterationInfo)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the classic Ant System parameters:
//   - α = 1, β = 2, ρ = 0.5, Q = 100
//   - 100 iterations, 10 ants per city
//   - sequential construction, default seed, discarded logs.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Iterations: DefaultIterations,
		Alpha:      DefaultAlpha,
		Beta:       DefaultBeta,
		Rho:        DefaultRho,
		Q:          DefaultQ,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context checked before every iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAnts sets the number of ants per iteration; n ≤ 0 restores 10·n.
func WithAnts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Ants = n
	}
}

// WithIterations sets the iteration budget.
//
//	n ≥ 0: run exactly n iterations
//	n < 0: invalid option → ErrOptionViolation
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithAlpha sets the pheromone exponent. It must be finite.
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			o.err = fmt.Errorf("%w: alpha must be finite (%g)", ErrOptionViolation, a)
			return
		}
		o.Alpha = a
	}
}

// WithBeta sets the heuristic exponent. It must be finite.
func WithBeta(b float64) Option {
	return func(o *Options) {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			o.err = fmt.Errorf("%w: beta must be finite (%g)", ErrOptionViolation, b)
			return
		}
		o.Beta = b
	}
}

// WithRho sets the evaporation rate; rho must lie in [0,1].
func WithRho(rho float64) Option {
	return func(o *Options) {
		if !(rho >= 0 && rho <= 1) {
			o.err = fmt.Errorf("%w: rho must be in [0,1] (%g)", ErrOptionViolation, rho)
			return
		}
		o.Rho = rho
	}
}

// WithQ sets the deposit constant; q must be finite and positive.
func WithQ(q float64) Option {
	return func(o *Options) {
		if !(q > 0) || math.IsInf(q, 1) {
			o.err = fmt.Errorf("%w: Q must be finite and > 0 (%g)", ErrOptionViolation, q)
			return
		}
		o.Q = q
	}
}

// WithPheromoneFloor keeps every pheromone entry at or above floor after
// evaporation. floor must be finite and non-negative; 0 disables the bound.
func WithPheromoneFloor(floor float64) Option {
	return func(o *Options) {
		if !(floor >= 0) || math.IsInf(floor, 1) {
			o.err = fmt.Errorf("%w: pheromone floor must be finite and >= 0 (%g)", ErrOptionViolation, floor)
			return
		}
		o.PheromoneFloor = floor
	}
}

// WithSeed fixes the engine RNG seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers builds tours on up to w goroutines; w ≤ 1 stays sequential.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			w = 1
		}
		o.Workers = w
	}
}

// WithLogger routes run logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnIteration registers a callback invoked after every iteration.
func WithOnIteration(fn func(IterationInfo)) Option {
	return func(o *Options) {
		o.OnIteration = fn
	}
}
