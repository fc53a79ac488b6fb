package continuous

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/antcolony/roulette"
)

// Archive is a bounded pool of candidates kept sorted by ascending cost.
// Entries with equal cost keep their insertion order.
type Archive struct {
	entries []Candidate
	k       int
}

// NewArchive returns an empty archive of capacity k.
func NewArchive(k int) (*Archive, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w (%d)", ErrBadArchiveSize, k)
	}

	return &Archive{entries: make([]Candidate, 0, 2*k), k: k}, nil
}

// Merge appends cs, stably re-sorts by cost and truncates to the capacity.
// The archive takes ownership of the X slices.
// Complexity: O((k+m) log (k+m)) for m new candidates.
func (a *Archive) Merge(cs ...Candidate) {
	a.entries = append(a.entries, cs...)
	sort.SliceStable(a.entries, func(i, j int) bool {
		return a.entries[i].Cost < a.entries[j].Cost
	})
	if len(a.entries) > a.k {
		clear(a.entries[a.k:])
		a.entries = a.entries[:a.k]
	}
}

// Len returns the number of entries.
func (a *Archive) Len() int { return len(a.entries) }

// Cap returns the capacity k.
func (a *Archive) Cap() int { return a.k }

// At returns entry i by rank (0 = best). The result shares storage with
// the archive and must not be modified.
func (a *Archive) At(i int) Candidate { return a.entries[i] }

// Best returns the lowest-cost entry.
func (a *Archive) Best() (Candidate, bool) {
	if len(a.entries) == 0 {
		return Candidate{Cost: math.Inf(1)}, false
	}

	return a.entries[0], true
}

// Candidates returns deep copies of all entries, best first.
func (a *Archive) Candidates() []Candidate { return cloneAll(a.entries) }

// RankWeights returns the normalized Gaussian rank kernel
//
//	w_i = 1/(q·k·√(2π)) · exp(−i² / (2q²k²)),  i = 0..k−1
//
// falling back to uniform weights if every w_i underflows to zero.
// Complexity: O(k).
func RankWeights(k int, q float64) []float64 {
	if k <= 0 {
		return nil
	}
	var (
		w     = make([]float64, k)
		qk    = q * float64(k)
		scale = 1 / (qk * math.Sqrt(2*math.Pi))
		i     int
	)
	for i = range w {
		w[i] = scale * math.Exp(-float64(i*i)/(2*qk*qk))
	}

	return roulette.Normalize(w)
}

// guideWheel lays the rank weights out in archive order.
func guideWheel(weights []float64) *roulette.Wheel {
	w := roulette.NewWheel(len(weights))
	for i, v := range weights {
		w.Add(i, v)
	}

	return w
}
