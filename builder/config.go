// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng           = nil                 (stochastic generators require WithSeed/WithRand)
//   • weightFn      = DefaultWeightFn     (every coupling is 1)
//   • singleDensity = uniform-count policy (see Random)
//   • pairDensity   = DefaultPairDensity  (0.5)
//   • biases        = nil                 (FromDistances emits no singles)
//   • maxAttempts   = DefaultMaxAttempts  (RegularGraph restarts)

package builder

import (
	"math/rand/v2"
)

// builderConfig aggregates all knobs used by generators and constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Coupling generator for edges.
	weightFn WeightFn

	// Random: per-qubit single-term probability, or singleDensityUniformCount.
	singleDensity float64
	// Random: per-pair inclusion probability.
	pairDensity float64

	// FromDistances: optional qubit -> single-term coefficient.
	biases map[int]float64

	// RegularGraph: bounded pairing restarts.
	maxAttempts int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:           nil,
		weightFn:      DefaultWeightFn,
		singleDensity: singleDensityUniformCount,
		pairDensity:   DefaultPairDensity,
		maxAttempts:   DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
