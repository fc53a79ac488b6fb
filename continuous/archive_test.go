package continuous_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/antcolony/continuous"
	"github.com/stretchr/testify/require"
)

func TestArchive_MergeSortsAndTruncates(t *testing.T) {
	_, err := continuous.NewArchive(0)
	require.ErrorIs(t, err, continuous.ErrBadArchiveSize)

	arc, err := continuous.NewArchive(3)
	require.NoError(t, err)
	_, ok := arc.Best()
	require.False(t, ok)

	arc.Merge(
		continuous.Candidate{X: []float64{1}, Cost: 5},
		continuous.Candidate{X: []float64{2}, Cost: 1},
	)
	arc.Merge(
		continuous.Candidate{X: []float64{3}, Cost: 5},
		continuous.Candidate{X: []float64{4}, Cost: 9},
		continuous.Candidate{X: []float64{5}, Cost: 0.5},
	)

	want := []continuous.Candidate{
		{X: []float64{5}, Cost: 0.5},
		{X: []float64{2}, Cost: 1},
		{X: []float64{1}, Cost: 5}, // equal costs keep insertion order
	}
	if diff := cmp.Diff(want, arc.Candidates()); diff != "" {
		t.Errorf("archive (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, arc.Len())
	require.Equal(t, 3, arc.Cap())

	best, ok := arc.Best()
	require.True(t, ok)
	require.Equal(t, 0.5, best.Cost)

	cp := arc.Candidates()
	cp[0].X[0] = 99
	require.Equal(t, 5.0, arc.At(0).X[0], "Candidates must deep copy")
}

func TestRankWeights(t *testing.T) {
	w := continuous.RankWeights(10, 0.1)
	require.Len(t, w, 10)

	var sum float64
	for i, v := range w {
		sum += v
		if i > 0 {
			require.Less(t, v, w[i-1], "weights decrease with rank")
		}
	}
	require.InDelta(t, 1.0, sum, 1e-12)
	// w1/w0 = exp(-1/(2·q²·k²)) = exp(-0.5)
	require.InDelta(t, math.Exp(-0.5), w[1]/w[0], 1e-12)

	require.Equal(t, []float64{1}, continuous.RankWeights(1, 0.1))
	require.Nil(t, continuous.RankWeights(0, 0.1))

	// Extreme selectivity: the tail underflows but weights stay normalized.
	tiny := continuous.RankWeights(50, 1e-3)
	require.InDelta(t, 1.0, tiny[0], 1e-12)
	require.Zero(t, tiny[49])
}

func TestSpread(t *testing.T) {
	arc, err := continuous.NewArchive(3)
	require.NoError(t, err)
	arc.Merge(
		continuous.Candidate{X: []float64{0, 5}, Cost: 1},
		continuous.Candidate{X: []float64{2, 5}, Cost: 2},
		continuous.Candidate{X: []float64{4, 5}, Cost: 3},
	)

	// Guide 0, dim 0: mean(|0-2|, |0-4|) = 3.
	require.InDelta(t, 0.5*3, continuous.Spread(arc, 0, 0, 0.5, -10, 10), 1e-12)
	// Guide 1, dim 0: mean(2, 2) = 2.
	require.InDelta(t, 2.0, continuous.Spread(arc, 1, 0, 1, -10, 10), 1e-12)
	// Identical coordinates collapse to the floor.
	require.Equal(t, continuous.MinSpread, continuous.Spread(arc, 0, 1, 0.85, -10, 10))

	single, err := continuous.NewArchive(1)
	require.NoError(t, err)
	single.Merge(continuous.Candidate{X: []float64{7}, Cost: 0})
	got := continuous.Spread(single, 0, 0, 0.85, -500, 500)
	require.InDelta(t, 0.85*1000/10, got, 1e-9)
	require.False(t, math.IsNaN(got) || math.IsInf(got, 0))
}

func TestGuide_ShortfallTakesLastEntry(t *testing.T) {
	arc, err := continuous.NewArchive(50)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		arc.Merge(continuous.Candidate{X: []float64{float64(i)}, Cost: float64(i)})
	}

	// q = 1e-3 puts almost all mass on the head; the far tail underflows to zero.
	require.Equal(t, 0, continuous.Guide(arc, 1e-3, 0.5))
	require.Equal(t, 49, continuous.Guide(arc, 1e-3, 1.5),
		"a draw beyond the cumulative mass picks the last archive entry")

	require.Equal(t, 0, continuous.Guide(arc, 0.1, 0))
}

func TestSchwefel(t *testing.T) {
	require.InDelta(t, 0, continuous.Schwefel([]float64{continuous.SchwefelOptimum}), 1e-3)
	require.InDelta(t, 0, continuous.Schwefel([]float64{
		continuous.SchwefelOptimum, continuous.SchwefelOptimum, continuous.SchwefelOptimum,
	}), 1e-3)
	require.InDelta(t, 2*continuous.SchwefelConstant, continuous.Schwefel([]float64{0, 0}), 1e-12)

	x := []float64{-123.4, 56.7}
	require.Equal(t, continuous.Schwefel(x), continuous.Schwefel(x))
}
