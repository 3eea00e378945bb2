// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand/v2"
)

// pcgStream is the fixed second PCG word used by WithSeed, so a single int64
// seed fully determines the stream.
const pcgStream = 0x9e3779b97f4a7c15

// BuilderOption customizes a generator by mutating a builderConfig before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// The RNG is not safe for concurrent use; give each goroutine its own
// stream (see DeriveRand).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new PCG-backed *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(uint64(seed), pcgStream))
	}
}

// WithWeightFn overrides the per-edge coupling generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSingleDensity switches Random to per-qubit Bernoulli(p) single terms.
// Panics unless 0 ≤ p ≤ 1.
func WithSingleDensity(p float64) BuilderOption {
	mustProbability("WithSingleDensity", p)
	return func(c *builderConfig) {
		c.singleDensity = p
	}
}

// WithPairDensity sets the per-pair inclusion probability used by Random.
// Panics unless 0 ≤ p ≤ 1.
func WithPairDensity(p float64) BuilderOption {
	mustProbability("WithPairDensity", p)
	return func(c *builderConfig) {
		c.pairDensity = p
	}
}

// WithBiases attaches single-term coefficients to FromDistances output.
// The map is copied. Panics on negative qubit ids or non-finite values.
func WithBiases(biases map[int]float64) BuilderOption {
	cp := make(map[int]float64, len(biases))
	for q, h := range biases {
		if q < 0 {
			panic("builder: WithBiases(negative qubit)")
		}
		if math.IsNaN(h) || math.IsInf(h, 0) {
			panic("builder: WithBiases(non-finite coefficient)")
		}
		cp[q] = h
	}
	return func(c *builderConfig) {
		c.biases = cp
	}
}

// WithMaxAttempts bounds pairing restarts in RegularGraph. Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}

func mustProbability(name string, p float64) {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		panic("builder: " + name + "(p outside [0,1])")
	}
}
