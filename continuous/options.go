package continuous

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Default colony parameters.
const (
	DefaultAnts        = 20
	DefaultIterations  = 100
	DefaultArchiveSize = 10
	DefaultQ           = 0.1
	DefaultXi          = 0.85
	DefaultLower       = -500.0
	DefaultUpper       = 500.0

	// MinSpread is the smallest standard deviation used for sampling.
	MinSpread = 1e-5

	// maxHistoryPrealloc bounds the history capacity reserved up front.
	maxHistoryPrealloc = 1 << 16
)

// Option configures a Colony via functional arguments.
// Invalid values are recorded and surfaced by NewColony.
type Option func(*Options)

// Options holds the parameters of a colony run.
type Options struct {
	// Ctx allows cancellation between iterations.
	Ctx context.Context

	// Ants is the number of vectors sampled per iteration.
	Ants int

	// Iterations is the fixed iteration budget.
	Iterations int

	// ArchiveSize is the archive capacity k.
	ArchiveSize int

	// Q is the rank selectivity; smaller values favor the top entries.
	Q float64

	// Xi scales the sampling spread.
	Xi float64

	// Lower and Upper bound every coordinate.
	Lower, Upper float64

	// Objective is the function minimized; Schwefel by default.
	Objective Objective

	// Seed drives the engine RNG; 0 selects a fixed default seed.
	Seed int64

	// Workers > 1 samples ants concurrently on that many goroutines.
	Workers int

	// Logger receives run and iteration records.
	Logger *slog.Logger

	// OnIteration, when set, is called after every iteration.
	OnIteration func(IterationInfo)

	err error
}

// DefaultOptions returns the reference parameters: 20 ants, 100 iterations,
// k = 10, q = 0.1, ξ = 0.85, bounds [−500, 500], Schwefel objective.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Ants:        DefaultAnts,
		Iterations:  DefaultIterations,
		ArchiveSize: DefaultArchiveSize,
		Q:           DefaultQ,
		Xi:          DefaultXi,
		Lower:       DefaultLower,
		Upper:       DefaultUpper,
		Objective:   Schwefel,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithContext sets a context checked before every iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAnts sets the number of ants per iteration (≥ 1).
func WithAnts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: ants must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Ants = n
	}
}

// WithIterations sets the iteration budget (≥ 0).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithArchiveSize sets the archive capacity k. k < 1 fails with
// ErrBadArchiveSize.
func WithArchiveSize(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadArchiveSize, k)
			return
		}
		o.ArchiveSize = k
	}
}

// WithQ sets the rank selectivity; q must be finite and positive.
func WithQ(q float64) Option {
	return func(o *Options) {
		if !(q > 0) || !finite(q) {
			o.err = fmt.Errorf("%w: q must be finite and > 0 (%g)", ErrOptionViolation, q)
			return
		}
		o.Q = q
	}
}

// WithXi sets the spread scale; xi must be finite and non-negative.
func WithXi(xi float64) Option {
	return func(o *Options) {
		if !(xi >= 0) || !finite(xi) {
			o.err = fmt.Errorf("%w: xi must be finite and >= 0 (%g)", ErrOptionViolation, xi)
			return
		}
		o.Xi = xi
	}
}

// WithBounds sets the search box; lower < upper, both finite.
func WithBounds(lower, upper float64) Option {
	return func(o *Options) {
		if !finite(lower) || !finite(upper) || !(lower < upper) {
			o.err = fmt.Errorf("%w: bounds must be finite with lower < upper ([%g, %g])", ErrOptionViolation, lower, upper)
			return
		}
		o.Lower, o.Upper = lower, upper
	}
}

// WithObjective replaces the Schwefel objective.
func WithObjective(f Objective) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: objective is nil", ErrOptionViolation)
			return
		}
		o.Objective = f
	}
}

// WithSeed fixes the engine RNG seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers samples on up to w goroutines; w ≤ 1 stays sequential.
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
