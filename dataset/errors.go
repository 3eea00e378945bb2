// SPDX-License-Identifier: MIT
// Package: qaoakit/dataset
//
// errors.go — sentinel errors. Callers branch with errors.Is; every returned
// error is wrapped with the method name.

package dataset

import "errors"

var (
	// ErrEmpty indicates an input without clusters, points or rows.
	ErrEmpty = errors.New("dataset: empty input")

	// ErrDimensionMismatch indicates inconsistent counts or lengths: ragged
	// points, mean/covariance shape mismatches, or per-cluster slices whose
	// length differs from the cluster count.
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch")

	// ErrNotPositiveDefinite indicates a covariance matrix that is not
	// symmetric positive definite.
	ErrNotPositiveDefinite = errors.New("dataset: covariance is not symmetric positive definite")

	// ErrNeedRandSource indicates a sampling call without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("dataset: rng is required")

	// ErrUnsupportedMetric indicates a metric name outside the closed set.
	ErrUnsupportedMetric = errors.New("dataset: unsupported metric")

	// ErrZeroVector indicates a zero-norm point under the cosine metric.
	ErrZeroVector = errors.New("dataset: zero vector has no cosine distance")

	// ErrNonSquare indicates a distance matrix whose rows differ in length
	// from the row count.
	ErrNonSquare = errors.New("dataset: matrix is not square")

	// ErrAsymmetry indicates d[i][j] != d[j][i] beyond tolerance.
	ErrAsymmetry = errors.New("dataset: matrix is not symmetric")

	// ErrNonZeroDiagonal indicates d[i][i] != 0 beyond tolerance.
	ErrNonZeroDiagonal = errors.New("dataset: non-zero diagonal")

	// ErrNegativeDistance indicates a negative entry beyond tolerance.
	ErrNegativeDistance = errors.New("dataset: negative distance")

	// ErrNaNInf indicates a NaN or ±Inf entry.
	ErrNaNInf = errors.New("dataset: NaN or Inf entry")
)
