// Command aco runs the ant colony experiments from the command line.
//
//	aco tsp      [flags]   solve the TSP on a JSON adjacency graph
//	aco schwefel [flags]   minimize the Schwefel function
//
// Results are printed as a text summary and, with -out, saved as JSON
// documents (and convergence charts with -plot).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/antcolony/chart"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/convergence"
	"github.com/katalvlaran/antcolony/experiment"
	"github.com/katalvlaran/antcolony/graphjson"
	"github.com/katalvlaran/antcolony/report"
	"github.com/katalvlaran/antcolony/tsp"
)

const usage = `Usage: aco <tsp|schwefel> [flags]

Commands:
  tsp        Solve the travelling salesman problem (built-in 18-city graph
             unless -graph is given)
  schwefel   Minimize the Schwefel function

Flags:
`

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// flags holds the command-line overrides of one invocation.
type flags struct {
	config     string
	graph      string
	start      string
	out        string
	plot       bool
	format     string
	runs       int
	iterations int
	ants       int
	seed       int64
	workers    int
	dim        int
	verbose    bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 || (args[0] != report.ModeTSP && args[0] != report.ModeSchwefel) {
		fmt.Fprint(stderr, usage)
		return errUsage
	}
	mode := args[0]

	var f flags
	fs := flag.NewFlagSet("aco "+mode, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&f.config, "config", "", "INI run configuration")
	fs.StringVar(&f.graph, "graph", "", "adjacency JSON graph (tsp)")
	fs.StringVar(&f.start, "start", "", "start city (tsp)")
	fs.StringVar(&f.out, "out", "", "directory for JSON reports and charts")
	fs.BoolVar(&f.plot, "plot", false, "save a convergence chart (needs -out)")
	fs.StringVar(&f.format, "format", "", "chart format: png or svg")
	fs.IntVar(&f.runs, "runs", 0, "number of independent runs")
	fs.IntVar(&f.iterations, "iterations", 0, "iterations per run")
	fs.IntVar(&f.ants, "ants", 0, "ants per iteration")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = default)")
	fs.IntVar(&f.workers, "workers", 0, "goroutines building solutions")
	fs.IntVar(&f.dim, "dim", 0, "problem dimension (schwefel)")
	fs.BoolVar(&f.verbose, "v", false, "log every iteration")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	cfg, err := loadConfig(fs, f)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if mode == report.ModeTSP {
		return runTSP(ctx, cfg, logger, stdout)
	}

	return runSchwefel(ctx, cfg, logger, stdout)
}

// loadConfig reads -config (or the defaults) and applies the flags that
// were set explicitly.
func loadConfig(fs *flag.FlagSet, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "graph":
			cfg.TSP.Graph = f.graph
		case "start":
			cfg.TSP.Start = f.start
		case "out":
			cfg.Output.Dir = f.out
		case "plot":
			cfg.Output.Plot = f.plot
		case "format":
			cfg.Output.PlotFormat = f.format
		case "runs":
			cfg.Output.Runs = f.runs
		case "iterations":
			cfg.TSP.Iterations, cfg.Schwefel.Iterations = f.iterations, f.iterations
		case "ants":
			cfg.TSP.Ants, cfg.Schwefel.Ants = f.ants, f.ants
		case "seed":
			cfg.TSP.Seed, cfg.Schwefel.Seed = f.seed, f.seed
		case "workers":
			cfg.TSP.Workers, cfg.Schwefel.Workers = f.workers, f.workers
		case "dim":
			cfg.Schwefel.Dimension = f.dim
		}
	})

	return cfg, cfg.Validate()
}

func runTSP(ctx context.Context, cfg config.Config, logger *slog.Logger, stdout io.Writer) error {
	var (
		g   *tsp.Graph[string]
		err error
	)
	if cfg.TSP.Graph == "" {
		g, err = graphjson.Reference()
	} else {
		g, err = graphjson.Load(cfg.TSP.Graph)
	}
	if err != nil {
		return err
	}

	began := time.Now()
	costs := make([]float64, 0, cfg.Output.Runs)
	for i := 0; i < cfg.Output.Runs; i++ {
		p := cfg.TSP
		p.Seed = experiment.SeedFor(cfg.TSP.Seed, i)
		doc, err := experiment.TSP(ctx, g, p, logger.With(slog.Int("run", i+1)))
		if err != nil {
			return err
		}
		costs = append(costs, float64(doc.Cost))

		fmt.Fprintf(stdout, "=== TSP run %d/%d ===\n", i+1, cfg.Output.Runs)
		if doc.Found {
			fmt.Fprintf(stdout, "Best route: %s -> %s\n", strings.Join(doc.Route, " -> "), doc.Route[0])
			fmt.Fprintf(stdout, "Best cost:  %.2f\n", float64(doc.Cost))
		} else {
			fmt.Fprintln(stdout, "No valid tour found.")
		}
		if err = emit(stdout, cfg.Output, doc, convergence.History(floats(doc.History)), "TSP convergence", "Best tour cost"); err != nil {
			return err
		}
	}

	return emitBatch(stdout, cfg.Output, report.ModeTSP, costs, time.Since(began))
}

func runSchwefel(ctx context.Context, cfg config.Config, logger *slog.Logger, stdout io.Writer) error {
	began := time.Now()
	costs := make([]float64, 0, cfg.Output.Runs)
	for i := 0; i < cfg.Output.Runs; i++ {
		p := cfg.Schwefel
		p.Seed = experiment.SeedFor(cfg.Schwefel.Seed, i)
		doc, err := experiment.Schwefel(ctx, p, logger.With(slog.Int("run", i+1)))
		if err != nil {
			return err
		}
		costs = append(costs, float64(doc.Cost))

		best := make([]string, len(doc.Best))
		for j, v := range doc.Best {
			best[j] = fmt.Sprintf("%.4f", float64(v))
		}
		fmt.Fprintf(stdout, "=== Schwefel run %d/%d (d=%d) ===\n", i+1, cfg.Output.Runs, p.Dimension)
		fmt.Fprintf(stdout, "Best vector: [%s]\n", strings.Join(best, ", "))
		fmt.Fprintf(stdout, "Best cost:   %.6f\n", float64(doc.Cost))
		title := fmt.Sprintf("Schwefel convergence (%dD)", p.Dimension)
		if err = emit(stdout, cfg.Output, doc, convergence.History(floats(doc.History)), title, "Best Schwefel value"); err != nil {
			return err
		}
	}

	return emitBatch(stdout, cfg.Output, report.ModeSchwefel, costs, time.Since(began))
}

// emit prints the convergence summary and saves the report and chart.
func emit(stdout io.Writer, out config.Output, doc report.Document, h convergence.History, title, yLabel string) error {
	if err := report.WriteSummary(stdout, h); err != nil {
		return err
	}
	if out.Dir == "" {
		return nil
	}

	path, err := report.Save(out.Dir, doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Report: %s\n", path)

	if !out.Plot {
		return nil
	}
	img := strings.TrimSuffix(path, filepath.Ext(path)) + "." + out.PlotFormat
	if err = chart.Save(h, title, yLabel, img); err != nil {
		if errors.Is(err, chart.ErrNoData) {
			fmt.Fprintln(stdout, "Chart skipped: no finite costs.")
			return nil
		}
		return err
	}
	fmt.Fprintf(stdout, "Chart:  %s\n", img)

	return nil
}

// emitBatch prints and saves the aggregate of several runs.
func emitBatch(stdout io.Writer, out config.Output, mode string, costs []float64, elapsed time.Duration) error {
	if len(costs) < 2 {
		return nil
	}
	b := report.NewBatch(mode, costs, elapsed)
	fmt.Fprintf(stdout, "=== %d runs ===\n", b.Runs)
	fmt.Fprintf(stdout, "Mean: %.6f  StdDev: %.6f  Min: %.6f  Max: %.6f  Infeasible: %d\n",
		float64(b.Mean), float64(b.StdDev), float64(b.Min), float64(b.Max), b.Infeasible)
	if out.Dir == "" {
		return nil
	}
	path, err := report.Save(out.Dir, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Batch report: %s\n", path)

	return nil
}

func floats(fs []report.Float) []float64 {
	out := make([]float64, len(fs))
	for i, v := range fs {
		out[i] = float64(v)
	}

	return out
}
