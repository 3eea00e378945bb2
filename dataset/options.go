// SPDX-License-Identifier: MIT
// Package: qaoakit/dataset
//
// options.go — functional options for sampling calls. Option constructors
// panic on meaningless input; sampling functions never panic.

package dataset

import "math/rand/v2"

const pcgStream = 0x6a09e667f3bcc909

// Option customizes GaussianClusters.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a PCG-backed RNG with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(uint64(seed), pcgStream)) }
}
