// SPDX-License-Identifier: MIT
// Package: qaoakit/dataset
//
// metric.go — closed set of point metrics, all delegating to gonum/floats.

package dataset

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Metric selects the distance function used by PairwiseDistances.
type Metric int

const (
	// Euclidean is the L2 distance. It is the default metric.
	Euclidean Metric = iota
	// SqEuclidean is the squared L2 distance.
	SqEuclidean
	// Manhattan is the L1 (city-block) distance.
	Manhattan
	// Chebyshev is the L∞ distance.
	Chebyshev
	// Cosine is 1 - u·v / (|u||v|).
	Cosine
)

const methodParseMetric = "ParseMetric"

var metricNames = map[string]Metric{
	"":            Euclidean,
	"euclidean":   Euclidean,
	"sqeuclidean": SqEuclidean,
	"cityblock":   Manhattan,
	"manhattan":   Manhattan,
	"chebyshev":   Chebyshev,
	"cosine":      Cosine,
}

// ParseMetric resolves a case-insensitive metric name. The empty string
// selects Euclidean.
func ParseMetric(name string) (Metric, error) {
	m, ok := metricNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", methodParseMetric, name, ErrUnsupportedMetric)
	}
	return m, nil
}

// String returns the canonical lower-case name.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case SqEuclidean:
		return "sqeuclidean"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	case Cosine:
		return "cosine"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

func (m Metric) valid() bool { return m >= Euclidean && m <= Cosine }

// Distance evaluates the metric on two points of equal length.
// Errors: ErrDimensionMismatch, ErrZeroVector (Cosine), ErrUnsupportedMetric.
func (m Metric) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Distance: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}

	switch m {
	case Euclidean:
		return floats.Distance(a, b, 2), nil
	case SqEuclidean:
		d := floats.Distance(a, b, 2)
		return d * d, nil
	case Manhattan:
		return floats.Distance(a, b, 1), nil
	case Chebyshev:
		return floats.Distance(a, b, math.Inf(1)), nil
	case Cosine:
		na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
		if na == 0 || nb == 0 {
			return 0, fmt.Errorf("Distance: %w", ErrZeroVector)
		}
		// Rounding can push 1 - cos slightly below zero for parallel vectors.
		return math.Max(0, 1-floats.Dot(a, b)/(na*nb)), nil
	default:
		return 0, fmt.Errorf("Distance: %v: %w", m, ErrUnsupportedMetric)
	}
}
