// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// weight_fn.go — coupling distributions for generated edges.

package builder

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// WeightFn produces an edge coupling given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Negative bounds are allowed (ferromagnetic couplings).
// Panics if max < min or either bound is not finite.
// If rng is nil, yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// UnitUniformWeightFn samples U[0,1). It is the coupling distribution of
// weighted RandomRegular instances and of Random coefficients.
func UnitUniformWeightFn(rng *rand.Rand) float64 {
	return UniformWeightFn(0, 1)(rng)
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev).
// Panics if stddev < 0. If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// SignWeightFn samples ±1 with equal probability (spin-glass couplings).
// If rng is nil, yields DefaultEdgeWeight.
func SignWeightFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultEdgeWeight
	}
	if rng.IntN(2) == 0 {
		return -1
	}

	return 1
}

// WithConstantWeight sets a fixed coupling via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets couplings ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets couplings ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
