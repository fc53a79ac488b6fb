// Package roulette implements probability-proportional selection over a
// typed, ordered sequence of (index, weight) slots.
//
// A Wheel is filled slot by slot, optionally stable-sorted by descending
// weight, and spun with a uniform draw u ∈ [0,1): the first slot whose
// cumulative normalized weight reaches u wins. Ties keep insertion order, so
// a fixed random stream always yields the same choice.
//
// Wheels are reusable scratch structures: Reset keeps the backing storage.
// A Wheel is not safe for concurrent use.
package roulette

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Slot is one selectable entry: Index identifies the caller's candidate,
// Weight its unnormalized mass.
type Slot struct {
	Index  int
	Weight float64
}

// Wheel is an ordered sequence of slots plus their total weight.
type Wheel struct {
	slots []Slot
	total float64
}

// NewWheel returns an empty wheel with room for capacity slots.
func NewWheel(capacity int) *Wheel {
	if capacity < 0 {
		capacity = 0
	}

	return &Wheel{slots: make([]Slot, 0, capacity)}
}

// Reset empties the wheel, keeping its storage.
func (w *Wheel) Reset() {
	w.slots = w.slots[:0]
	w.total = 0
}

// Add appends a slot. Negative and NaN weights count as zero; +Inf is
// clamped to math.MaxFloat64 so the slot stays the heaviest one.
// Complexity: O(1) amortized.
func (w *Wheel) Add(index int, weight float64) {
	switch {
	case !(weight > 0):
		weight = 0
	case math.IsInf(weight, 1):
		weight = math.MaxFloat64
	}
	w.slots = append(w.slots, Slot{Index: index, Weight: weight})
	w.total += weight
}

// Len returns the number of slots.
func (w *Wheel) Len() int { return len(w.slots) }

// Total returns the sum of all slot weights.
func (w *Wheel) Total() float64 { return w.total }

// Slots returns a copy of the slots in their current order.
func (w *Wheel) Slots() []Slot {
	out := make([]Slot, len(w.slots))
	copy(out, w.slots)

	return out
}

// SortDescending orders slots by descending weight; equal weights keep
// their insertion order.
// Complexity: O(n log n).
func (w *Wheel) SortDescending() {
	sort.SliceStable(w.slots, func(a, b int) bool {
		return w.slots[a].Weight > w.slots[b].Weight
	})
}

// Spin selects a slot for the uniform draw u by a single cumulative scan in
// the current slot order, returning the chosen Index.
//
// If floating-point rounding leaves the cumulative mass just below u, the
// last slot with positive weight wins. ok is false when the wheel is empty
// or carries no mass at all.
//
// Complexity: O(n).
func (w *Wheel) Spin(u float64) (index int, ok bool) {
	k, _ := w.scan(u)
	if k < 0 {
		return 0, false
	}

	return w.slots[k].Index, true
}

// SpinOr is Spin with an explicit fallback: it returns fallback when the
// wheel carries no mass or the cumulative mass never reaches u.
// Complexity: O(n).
func (w *Wheel) SpinOr(u float64, fallback int) int {
	k, hit := w.scan(u)
	if !hit {
		return fallback
	}

	return w.slots[k].Index
}

// scan returns the position of the first positive slot whose cumulative
// normalized weight reaches u (hit = true), or the last positive slot on a
// shortfall. k is -1 when the wheel carries no mass.
func (w *Wheel) scan(u float64) (k int, hit bool) {
	if len(w.slots) == 0 || !(w.total > 0) {
		return -1, false
	}

	var (
		cum   float64
		total = w.total
		div   = 1.0
		last  = -1
	)
	// Clamped weights can overflow the running total; rescale them.
	if math.IsInf(total, 1) {
		div, total = math.MaxFloat64, 0
		for k = range w.slots {
			total += w.slots[k].Weight / div
		}
	}
	for k = range w.slots {
		if w.slots[k].Weight <= 0 {
			continue
		}
		last = k
		cum += w.slots[k].Weight / div / total
		if u <= cum {
			return k, true
		}
	}

	return last, false
}

// Normalize returns weights scaled to sum to 1. A zero (or non-positive)
// sum yields uniform weights. The input is not modified.
// Complexity: O(n).
func Normalize(weights []float64) []float64 {
	out := make([]float64, len(weights))
	if len(weights) == 0 {
		return out
	}

	sum := floats.Sum(weights)
	if !(sum > 0) {
		for i := range out {
			out[i] = 1 / float64(len(out))
		}
		return out
	}
	floats.ScaleTo(out, 1/sum, weights)

	return out
}
