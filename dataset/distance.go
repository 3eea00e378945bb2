// SPDX-License-Identifier: MIT
// Package: qaoakit/dataset
//
// distance.go — DistanceMatrix and pairwise distance computation.
//
// Invariants of a DistanceMatrix:
//   • n ≥ 1, square and symmetric (symmetry is structural: *mat.SymDense).
//   • Zero diagonal, non-negative, finite entries.

package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	methodPairwiseDistances = "PairwiseDistances"
	methodNewDistanceMatrix = "NewDistanceMatrix"
	methodValidate          = "Validate"

	// DefaultTolerance is the absolute tolerance used by NewDistanceMatrix.
	DefaultTolerance = 1e-9
)

// DistanceMatrix is an immutable, validated n×n distance matrix.
type DistanceMatrix struct {
	sym *mat.SymDense
}

// N returns the number of points.
func (d *DistanceMatrix) N() int {
	n, _ := d.sym.Dims()
	return n
}

// At returns the distance between points i and j. It panics on out-of-range
// indices, as gonum matrices do.
func (d *DistanceMatrix) At(i, j int) float64 { return d.sym.At(i, j) }

// Symmetric exposes a read-only gonum view of the matrix.
func (d *DistanceMatrix) Symmetric() mat.Symmetric { return d.sym }

// Rows returns a dense row-major copy.
// Complexity: O(n²).
func (d *DistanceMatrix) Rows() [][]float64 {
	n := d.N()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = d.sym.At(i, j)
		}
	}
	return out
}

// Validate re-checks the entry invariants with absolute tolerance tol:
// ErrNaNInf, ErrNonZeroDiagonal (|d[i][i]| > tol), ErrNegativeDistance
// (d[i][j] < -tol).
// Complexity: O(n²).
func (d *DistanceMatrix) Validate(tol float64) error {
	n := d.N()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := checkEntry(methodValidate, i, j, d.sym.At(i, j), tol); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkEntry(method string, i, j int, v, tol float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%s: d[%d][%d]=%v: %w", method, i, j, v, ErrNaNInf)
	case i == j && math.Abs(v) > tol:
		return fmt.Errorf("%s: d[%d][%d]=%g: %w", method, i, i, v, ErrNonZeroDiagonal)
	case v < -tol:
		return fmt.Errorf("%s: d[%d][%d]=%g: %w", method, i, j, v, ErrNegativeDistance)
	}
	return nil
}

// NewDistanceMatrix validates rows with DefaultTolerance and adopts them.
// The upper triangle is stored; the lower triangle must match it within
// tolerance. Diagonal entries within tolerance of zero are stored as 0.
//
// Errors: ErrEmpty, ErrNonSquare, ErrNaNInf, ErrAsymmetry,
// ErrNonZeroDiagonal, ErrNegativeDistance.
// Complexity: O(n²).
func NewDistanceMatrix(rows [][]float64) (*DistanceMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewDistanceMatrix, ErrEmpty)
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				methodNewDistanceMatrix, i, len(r), n, ErrNonSquare)
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rows[i][j]
			if err := checkEntry(methodNewDistanceMatrix, i, j, v, DefaultTolerance); err != nil {
				return nil, err
			}
			if err := checkEntry(methodNewDistanceMatrix, j, i, rows[j][i], DefaultTolerance); err != nil {
				return nil, err
			}
			if math.Abs(v-rows[j][i]) > DefaultTolerance {
				return nil, fmt.Errorf("%s: d[%d][%d]=%g vs d[%d][%d]=%g: %w",
					methodNewDistanceMatrix, i, j, v, j, i, rows[j][i], ErrAsymmetry)
			}
			if i == j {
				v = 0
			}
			sym.SetSym(i, j, v)
		}
	}

	return &DistanceMatrix{sym: sym}, nil
}

// PairwiseDistances evaluates metric over every pair of points.
//
// Errors: ErrEmpty (no points or zero-length points), ErrDimensionMismatch
// (ragged points), ErrUnsupportedMetric, ErrZeroVector (Cosine).
// Complexity: O(n²·d).
func PairwiseDistances(points [][]float64, metric Metric) (*DistanceMatrix, error) {
	if !metric.valid() {
		return nil, fmt.Errorf("%s: %v: %w", methodPairwiseDistances, metric, ErrUnsupportedMetric)
	}
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("%s: no points: %w", methodPairwiseDistances, ErrEmpty)
	}
	dim := len(points[0])
	if dim == 0 {
		return nil, fmt.Errorf("%s: zero-dimensional points: %w", methodPairwiseDistances, ErrEmpty)
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%s: point %d has dim %d, want %d: %w",
				methodPairwiseDistances, i, len(p), dim, ErrDimensionMismatch)
		}
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%s: point %d: %w", methodPairwiseDistances, i, ErrNaNInf)
			}
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := metric.Distance(points[i], points[j])
			if err != nil {
				return nil, fmt.Errorf("%s: (%d,%d): %w", methodPairwiseDistances, i, j, err)
			}
			if math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: (%d,%d) overflow: %w", methodPairwiseDistances, i, j, ErrNaNInf)
			}
			sym.SetSym(i, j, v)
		}
	}

	return &DistanceMatrix{sym: sym}, nil
}
