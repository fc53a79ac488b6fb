// Package experiment runs configured colony experiments and wraps the
// results in report documents. It is shared by the aco command and the
// Lambda handler.
package experiment

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/continuous"
	"github.com/katalvlaran/antcolony/report"
	"github.com/katalvlaran/antcolony/tsp"
)

// TSP solves g with parameters p. An empty p.Start starts from the first
// city of the graph.
func TSP(ctx context.Context, g *tsp.Graph[string], p config.TSP, logger *slog.Logger) (*report.TSPReport, error) {
	opts := append(p.Options(), tsp.WithContext(ctx), tsp.WithLogger(logger))
	colony, err := tsp.NewColony(g, opts...)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	var res tsp.Result[string]
	if p.Start == "" {
		res, err = colony.Solve()
	} else {
		res, err = colony.SolveFrom(p.Start)
	}
	if err != nil {
		return nil, err
	}

	return report.NewTSP(res, p, time.Since(began)), nil
}

// Schwefel minimizes the Schwefel function with parameters p.
func Schwefel(ctx context.Context, p config.Schwefel, logger *slog.Logger) (*report.ContinuousReport, error) {
	opts := append(p.Options(), continuous.WithContext(ctx), continuous.WithLogger(logger))
	colony, err := continuous.NewColony(p.Dimension, opts...)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	res, err := colony.Solve()
	if err != nil {
		return nil, err
	}

	return report.NewContinuous(res, p, time.Since(began)), nil
}

// SeedFor returns the seed of run i in a batch started from base, so that
// repeated runs are independent but reproducible.
func SeedFor(base int64, i int) int64 {
	if base == 0 {
		base = 1
	}

	return base + int64(i)
}
