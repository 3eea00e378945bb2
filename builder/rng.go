// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// rng.go — deterministic RNG streams for generators.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
//   - Use DeriveRand to create independent streams for parallel workers.

package builder

import "math/rand/v2"

// defaultRNGSeed is the parent seed used when DeriveRand gets a nil base.
const defaultRNGSeed uint64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer.
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// DeriveRand creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base is nil, defaultRNGSeed is the parent.
// Otherwise base.Uint64() is consumed once, so repeated derivations with the
// same stream id still differ.
//
// Call it during setup (not in hot loops) to create per-worker RNGs.
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Uint64()
	}
	s := deriveSeed(parent, stream)

	return rand.New(rand.NewPCG(s, deriveSeed(s, stream)))
}
