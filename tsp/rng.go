// Package tsp - RNG utilities shared by the colony and its ants.
//
// Goals:
//   - Determinism: same seed ⇒ identical tours and histories.
//   - Encapsulation: one RNG factory; no time-based sources anywhere.
//   - Independence: every ant draws from its own SplitMix64-derived stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each ant owns its *rand.Rand.
//   - Streams are reseeded from the engine RNG in ant order before fan-out,
//     so the worker count never changes the draws.
package tsp

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer, so neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// reseedStreams draws one parent value per stream from base, in stream
// order, and reseeds each stream from it. Consuming base sequentially keeps
// the streams independent of how they are later scheduled.
//
// Complexity: O(len(streams)).
func reseedStreams(base *rand.Rand, streams []*rand.Rand) {
	for i, r := range streams {
		r.Seed(deriveSeed(base.Int63(), uint64(i)))
	}
}
