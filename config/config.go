// Package config loads run configurations for the aco command from INI
// files. Sections [tsp], [schwefel] and [output] map onto the structs
// below; keys that are absent keep the values of Default.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/katalvlaran/antcolony/continuous"
	"github.com/katalvlaran/antcolony/tsp"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is a complete run configuration.
type Config struct {
	TSP      TSP
	Schwefel Schwefel
	Output   Output
}

// TSP holds the [tsp] section.
type TSP struct {
	Ants           int     `ini:"ants" json:"ants"` // 0 ⇒ 10 per city
	Iterations     int     `ini:"iterations" json:"iterations"`
	Alpha          float64 `ini:"alpha" json:"alpha"`
	Beta           float64 `ini:"beta" json:"beta"`
	Rho            float64 `ini:"rho" json:"rho"`
	Q              float64 `ini:"q" json:"q"`
	PheromoneFloor float64 `ini:"pheromone_floor" json:"pheromoneFloor"`
	Start          string  `ini:"start" json:"start"` // empty ⇒ first city
	Graph          string  `ini:"graph" json:"-"`     // adjacency JSON path; empty ⇒ built-in graph
	Seed           int64   `ini:"seed" json:"seed"`
	Workers        int     `ini:"workers" json:"workers"`
}

// Schwefel holds the [schwefel] section.
type Schwefel struct {
	Dimension   int     `ini:"dimension" json:"dimension"`
	Ants        int     `ini:"ants" json:"ants"`
	Iterations  int     `ini:"iterations" json:"iterations"`
	ArchiveSize int     `ini:"archive_size" json:"archiveSize"`
	Q           float64 `ini:"q" json:"q"`
	Xi          float64 `ini:"xi" json:"xi"`
	Lower       float64 `ini:"lower" json:"lower"`
	Upper       float64 `ini:"upper" json:"upper"`
	Seed        int64   `ini:"seed" json:"seed"`
	Workers     int     `ini:"workers" json:"workers"`
}

// Output holds the [output] section.
type Output struct {
	Dir        string `ini:"dir"` // empty ⇒ nothing is written
	Plot       bool   `ini:"plot"`
	PlotFormat string `ini:"plot_format"` // png or svg
	Runs       int    `ini:"runs"`
}

// Default returns the reference experiment: a 50-ant, 100-iteration TSP
// run from city "1" and a 5-dimensional Schwefel run of 50 iterations.
func Default() Config {
	return Config{
		TSP: TSP{
			Ants:       50,
			Iterations: tsp.DefaultIterations,
			Alpha:      tsp.DefaultAlpha,
			Beta:       tsp.DefaultBeta,
			Rho:        tsp.DefaultRho,
			Q:          tsp.DefaultQ,
			Start:      "1",
		},
		Schwefel: Schwefel{
			Dimension:   5,
			Ants:        continuous.DefaultAnts,
			Iterations:  50,
			ArchiveSize: continuous.DefaultArchiveSize,
			Q:           continuous.DefaultQ,
			Xi:          continuous.DefaultXi,
			Lower:       continuous.DefaultLower,
			Upper:       continuous.DefaultUpper,
		},
		Output: Output{
			PlotFormat: "png",
			Runs:       1,
		},
	}
}

// Load reads the INI file at path over Default and validates the result.
func Load(path string) (Config, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config file '%s': %w", path, err)
	}

	return fromFile(f)
}

// Parse is Load for in-memory INI data.
func Parse(data []byte) (Config, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return fromFile(f)
}

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:         true,
	UnescapeValueCommentSymbols: true,
}

func fromFile(f *ini.File) (Config, error) {
	c := Default()
	if err := f.Section("tsp").MapTo(&c.TSP); err != nil {
		return Config{}, fmt.Errorf("failed to map [tsp] section: %w", err)
	}
	if err := f.Section("schwefel").MapTo(&c.Schwefel); err != nil {
		return Config{}, fmt.Errorf("failed to map [schwefel] section: %w", err)
	}
	if err := f.Section("output").MapTo(&c.Output); err != nil {
		return Config{}, fmt.Errorf("failed to map [output] section: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.TSP.Ants < 0:
		return fmt.Errorf("%w: tsp.ants = %d", ErrInvalidConfig, c.TSP.Ants)
	case c.TSP.Iterations < 0:
		return fmt.Errorf("%w: tsp.iterations = %d", ErrInvalidConfig, c.TSP.Iterations)
	case c.TSP.Rho < 0 || c.TSP.Rho > 1:
		return fmt.Errorf("%w: tsp.rho = %g", ErrInvalidConfig, c.TSP.Rho)
	case c.TSP.Q <= 0:
		return fmt.Errorf("%w: tsp.q = %g", ErrInvalidConfig, c.TSP.Q)
	case c.Schwefel.Dimension < 1:
		return fmt.Errorf("%w: schwefel.dimension = %d", ErrInvalidConfig, c.Schwefel.Dimension)
	case c.Schwefel.Ants < 1:
		return fmt.Errorf("%w: schwefel.ants = %d", ErrInvalidConfig, c.Schwefel.Ants)
	case c.Schwefel.Iterations < 0:
		return fmt.Errorf("%w: schwefel.iterations = %d", ErrInvalidConfig, c.Schwefel.Iterations)
	case c.Schwefel.ArchiveSize < 1:
		return fmt.Errorf("%w: schwefel.archive_size = %d", ErrInvalidConfig, c.Schwefel.ArchiveSize)
	case c.Schwefel.Q <= 0:
		return fmt.Errorf("%w: schwefel.q = %g", ErrInvalidConfig, c.Schwefel.Q)
	case c.Schwefel.Xi < 0:
		return fmt.Errorf("%w: schwefel.xi = %g", ErrInvalidConfig, c.Schwefel.Xi)
	case !(c.Schwefel.Lower < c.Schwefel.Upper):
		return fmt.Errorf("%w: schwefel bounds [%g, %g]", ErrInvalidConfig, c.Schwefel.Lower, c.Schwefel.Upper)
	case c.Output.Runs < 1:
		return fmt.Errorf("%w: output.runs = %d", ErrInvalidConfig, c.Output.Runs)
	case c.Output.PlotFormat != "png" && c.Output.PlotFormat != "svg":
		return fmt.Errorf("%w: output.plot_format = %q", ErrInvalidConfig, c.Output.PlotFormat)
	}

	return nil
}

// Options converts the section into colony options.
func (t TSP) Options() []tsp.Option {
	return []tsp.Option{
		tsp.WithAnts(t.Ants),
		tsp.WithIterations(t.Iterations),
		tsp.WithAlpha(t.Alpha),
		tsp.WithBeta(t.Beta),
		tsp.WithRho(t.Rho),
		tsp.WithQ(t.Q),
		tsp.WithPheromoneFloor(t.PheromoneFloor),
		tsp.WithSeed(t.Seed),
		tsp.WithWorkers(t.Workers),
	}
}

// Options converts the section into colony options; the dimension is
// passed to continuous.NewColony separately.
func (s Schwefel) Options() []continuous.Option {
	return []continuous.Option{
		continuous.WithAnts(s.Ants),
		continuous.WithIterations(s.Iterations),
		continuous.WithArchiveSize(s.ArchiveSize),
		continuous.WithQ(s.Q),
		continuous.WithXi(s.Xi),
		continuous.WithBounds(s.Lower, s.Upper),
		continuous.WithSeed(s.Seed),
		continuous.WithWorkers(s.Workers),
	}
}
