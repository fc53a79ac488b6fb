// Package continuous - RNG utilities for the archive colony.
//
// Goals:
//   - Determinism: same seed ⇒ identical archive and history.
//   - Independence: each ant owns a stream reseeded in ant order every
//     iteration, so the worker count never changes the draws.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across ants.
package continuous

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ defaultRNGSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with the
// SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
