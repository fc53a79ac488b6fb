// Package continuous - candidate sampling for a single ant.
//
// An ant picks a guide from the archive by rank-weight roulette, then draws
// every coordinate from N(guide_j, σ_j) and clamps it into the box.
//
// Contracts:
//   - The archive and the wheel are read-only while ants sample.
//   - σ_j never drops below MinSpread.
//   - A draw beyond the cumulative rank mass selects the last archive entry.
//
// Complexity:
//   - O(d·k) per candidate plus one objective evaluation.
package continuous

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/antcolony/roulette"
)

// ant samples one candidate per iteration from its own RNG stream.
type ant struct {
	rng   *rand.Rand
	diffs []float64
	out   Candidate
}

func newAnt(k int) *ant {
	return &ant{rng: rngFromSeed(0), diffs: make([]float64, 0, k)}
}

// sample draws a guide from the archive and perturbs it coordinate-wise.
//
// RNG consumption order: one Float64 for the guide, then one NormFloat64
// per dimension.
//
// Complexity: O(d·k).
func (a *ant) sample(arc *Archive, wheel *roulette.Wheel, o *Options, dim int) {
	g := pickGuide(wheel, a.rng.Float64(), arc.Len())
	guide := arc.At(g).X

	var (
		x     = make([]float64, dim)
		width = o.Upper - o.Lower
		sigma float64
		j     int
	)
	for j = 0; j < dim; j++ {
		sigma = spread(arc, g, j, o.Xi, width, &a.diffs)
		x[j] = clamp(guide[j]+a.rng.NormFloat64()*sigma, o.Lower, o.Upper)
	}

	a.out = Candidate{X: x, Cost: evaluate(o.Objective, x)}
}

// pickGuide spins the rank wheel for u; when the cumulative mass falls
// short of u the last archive entry is the guide.
func pickGuide(wheel *roulette.Wheel, u float64, k int) int {
	return wheel.SpinOr(u, k-1)
}

// spread returns σ_j for guide g: ξ times the mean absolute distance from
// the guide to every other archive member in dimension j, or ξ·width/10 for
// a single-entry archive, never below MinSpread. diffs is scratch space.
func spread(arc *Archive, g, j int, xi, width float64, diffs *[]float64) float64 {
	var sigma float64
	if arc.Len() == 1 {
		sigma = xi * math.Abs(width) / 10
	} else {
		d := (*diffs)[:0]
		gj := arc.At(g).X[j]
		for i := 0; i < arc.Len(); i++ {
			if i == g {
				continue
			}
			d = append(d, math.Abs(gj-arc.At(i).X[j]))
		}
		*diffs = d
		sigma = xi * stat.Mean(d, nil)
	}
	if !(sigma >= MinSpread) {
		sigma = MinSpread
	}

	return sigma
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
