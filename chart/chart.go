// Package chart draws convergence curves (best cost per iteration) with
// gonum/plot. Output format follows the file extension (.png, .svg, ...).
package chart

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/antcolony/convergence"
)

// ErrNoData is returned when a history has no finite entry to draw.
var ErrNoData = errors.New("chart: no finite values to plot")

// Image size of saved charts.
const (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch
)

// Points converts h into plot points, 1-based on X. Non-finite entries
// (iterations before any feasible solution) are skipped.
func Points(h convergence.History) plotter.XYs {
	pts := make(plotter.XYs, 0, len(h))
	for i, v := range h {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: v})
	}

	return pts
}

// Convergence builds a line-and-marker plot of h.
func Convergence(h convergence.History, title, yLabel string) (*plot.Plot, error) {
	pts := Points(h)
	if len(pts) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	line, marks, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	marks.Radius = vg.Points(2)
	p.Add(line, marks)

	return p, nil
}

// Save renders the convergence plot of h to path.
func Save(h convergence.History, title, yLabel, path string) error {
	p, err := Convergence(h, title, yLabel)
	if err != nil {
		return err
	}
	if err = p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("chart: save %q: %w", path, err)
	}

	return nil
}
