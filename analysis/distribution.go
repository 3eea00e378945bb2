// SPDX-License-Identifier: MIT
// Package: qaoakit/analysis
//
// distribution.go — probability distributions over basis states.
//
// Contract:
//   • Length is 2^n with n ≥ 1; entry i is the probability of basis index i.
//   • Entries are non-negative and not NaN. Readers such as
//     MaxProbabilityPattern do not require normalization; Validate does.
//   • Ties within TieTolerance resolve to the lowest index.

package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	methodValidate              = "Validate"
	methodMaxProbabilityPattern = "MaxProbabilityPattern"
	methodMostLikely            = "MostLikely"
	methodDegeneratePair        = "DegeneratePair"

	// TieTolerance is the absolute margin under which two probabilities tie.
	TieTolerance = 1e-12

	// DefaultSumTolerance is the normalization slack accepted by Validate(0).
	DefaultSumTolerance = 1e-9
)

// Distribution holds one probability per basis index.
type Distribution []float64

// Outcome is a basis state with its probability.
type Outcome struct {
	Pattern     Pattern
	Index       int
	Probability float64
}

// Qubits returns n for a distribution of length 2^n, or 0 if the length is
// not a power of two ≥ 2.
func (d Distribution) Qubits() int {
	n, _ := qubitsFor(len(d))
	return n
}

// check validates shape and entries without the normalization test.
func (d Distribution) check(method string) (int, error) {
	if len(d) == 0 {
		return 0, fmt.Errorf("%s: empty: %w", method, ErrInvalidDistribution)
	}
	n, ok := qubitsFor(len(d))
	if !ok {
		return 0, fmt.Errorf("%s: length %d is not a power of two ≥ 2: %w", method, len(d), ErrInvalidDistribution)
	}
	if n > MaxPatternBits {
		return 0, fmt.Errorf("%s: %d qubits: %w", method, n, ErrInvalidDistribution)
	}
	for i, p := range d {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return 0, fmt.Errorf("%s: p[%d]=%v: %w", method, i, p, ErrInvalidDistribution)
		}
	}
	return n, nil
}

// Validate checks shape, entries and that the entries sum to 1 within tol
// (DefaultSumTolerance when tol ≤ 0).
// Complexity: O(2^n).
func (d Distribution) Validate(tol float64) error {
	if _, err := d.check(methodValidate); err != nil {
		return err
	}
	if tol <= 0 {
		tol = DefaultSumTolerance
	}
	if s := floats.Sum(d); math.Abs(s-1) > tol {
		return fmt.Errorf("%s: sum %g: %w", methodValidate, s, ErrInvalidDistribution)
	}
	return nil
}

// argmax returns the lowest index whose value is within TieTolerance of the
// maximum, ignoring indices in skip.
func argmax(d Distribution, skip map[int]bool) int {
	best := -1
	for i, p := range d {
		if skip[i] {
			continue
		}
		if best < 0 || p > d[best]+TieTolerance {
			best = i
		}
	}
	return best
}

// MaxProbabilityPattern returns the most probable basis state as a pattern
// together with its index. Ties within TieTolerance go to the lowest index.
//
// Example: a 16-entry distribution peaking at index 14 yields [1 1 1 0].
// Errors: ErrInvalidDistribution.
// Complexity: O(2^n).
func MaxProbabilityPattern(d Distribution) (Pattern, int, error) {
	n, err := d.check(methodMaxProbabilityPattern)
	if err != nil {
		return nil, 0, err
	}
	idx := argmax(d, nil)
	p, err := PatternFromIndex(idx, n)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", methodMaxProbabilityPattern, err)
	}
	return p, idx, nil
}

// MostLikely returns up to k distinct outcomes in decreasing probability.
// Each step takes the current maximum (lowest index on ties) and removes it
// from consideration; d itself is never modified. k ≤ 0 yields nil.
// Complexity: O(k · 2^n).
func MostLikely(d Distribution, k int) ([]Outcome, error) {
	n, err := d.check(methodMostLikely)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, nil
	}
	if k > len(d) {
		k = len(d)
	}

	taken := make(map[int]bool, k)
	out := make([]Outcome, 0, k)
	for len(out) < k {
		idx := argmax(d, taken)
		taken[idx] = true
		p, err := PatternFromIndex(idx, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodMostLikely, err)
		}
		out = append(out, Outcome{Pattern: p, Index: idx, Probability: d[idx]})
	}

	return out, nil
}

// DegeneratePair returns the most probable outcome and its bitwise
// complement. For pair-only cost operators both carry equal probability.
// Errors: ErrInvalidDistribution.
func DegeneratePair(d Distribution) (best, complement Outcome, err error) {
	p, idx, err := MaxProbabilityPattern(d)
	if err != nil {
		return Outcome{}, Outcome{}, fmt.Errorf("%s: %w", methodDegeneratePair, err)
	}
	c := p.Complement()
	ci := c.Index()

	return Outcome{Pattern: p, Index: idx, Probability: d[idx]},
		Outcome{Pattern: c, Index: ci, Probability: d[ci]}, nil
}
