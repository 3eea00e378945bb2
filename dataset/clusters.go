// SPDX-License-Identifier: MIT
// Package: qaoakit/dataset
//
// clusters.go — labelled Gaussian point clouds.

package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

const (
	methodGaussianClusters = "GaussianClusters"
	methodBinaryLabels     = "BinaryLabels"
)

// Dataset is a labelled point cloud. Points[i] belongs to cluster Labels[i].
type Dataset struct {
	Points [][]float64
	Labels []int
	Dim    int
}

// Len returns the number of points.
func (d *Dataset) Len() int { return len(d.Points) }

// BinaryLabels returns the labels as bits for two-cluster data, in the form
// expected by solution scoring. Single-cluster data yields all zeros.
// Errors: ErrDimensionMismatch if any label is outside {0, 1}.
func (d *Dataset) BinaryLabels() ([]uint8, error) {
	out := make([]uint8, len(d.Labels))
	for i, l := range d.Labels {
		if l != 0 && l != 1 {
			return nil, fmt.Errorf("%s: label %d at %d is not binary: %w", methodBinaryLabels, l, i, ErrDimensionMismatch)
		}
		out[i] = uint8(l)
	}
	return out, nil
}

// GaussianClusters draws pointsPerCluster[c] points from N(means[c],
// covariances[c]) for every cluster c and concatenates them in cluster order.
// All means share one dimension d ≥ 1; each covariance is d×d and must be
// symmetric positive definite.
//
// Errors:
//   - ErrEmpty if clusterCount < 1.
//   - ErrDimensionMismatch if len(means), len(covariances) or
//     len(pointsPerCluster) differ from clusterCount, if a count is negative,
//     or if a mean/covariance shape disagrees with d.
//   - ErrNotPositiveDefinite if a covariance is asymmetric or not SPD.
//   - ErrNeedRandSource without WithSeed/WithRand.
//
// Complexity: O(c·d³ + N·d²) for N total points.
func GaussianClusters(clusterCount int, pointsPerCluster []int, means [][]float64, covariances [][][]float64, opts ...Option) (*Dataset, error) {
	cfg := newConfig(opts...)

	if clusterCount < 1 {
		return nil, fmt.Errorf("%s: clusterCount=%d: %w", methodGaussianClusters, clusterCount, ErrEmpty)
	}
	if len(means) != clusterCount || len(covariances) != clusterCount || len(pointsPerCluster) != clusterCount {
		return nil, fmt.Errorf("%s: %d clusters but %d means, %d covariances, %d counts: %w",
			methodGaussianClusters, clusterCount, len(means), len(covariances), len(pointsPerCluster), ErrDimensionMismatch)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGaussianClusters, ErrNeedRandSource)
	}

	dim := len(means[0])
	if dim == 0 {
		return nil, fmt.Errorf("%s: zero-dimensional mean: %w", methodGaussianClusters, ErrDimensionMismatch)
	}

	// Validate everything before the first draw so failures consume no randomness.
	dists := make([]*distmv.Normal, clusterCount)
	total := 0
	for c := 0; c < clusterCount; c++ {
		if pointsPerCluster[c] < 0 {
			return nil, fmt.Errorf("%s: cluster %d has %d points: %w",
				methodGaussianClusters, c, pointsPerCluster[c], ErrDimensionMismatch)
		}
		total += pointsPerCluster[c]

		sigma, err := covariance(c, dim, means[c], covariances[c])
		if err != nil {
			return nil, err
		}
		normal, ok := distmv.NewNormal(means[c], sigma, cfg.rng)
		if !ok {
			return nil, fmt.Errorf("%s: cluster %d: %w", methodGaussianClusters, c, ErrNotPositiveDefinite)
		}
		dists[c] = normal
	}

	ds := &Dataset{
		Points: make([][]float64, 0, total),
		Labels: make([]int, 0, total),
		Dim:    dim,
	}
	for c, normal := range dists {
		for k := 0; k < pointsPerCluster[c]; k++ {
			ds.Points = append(ds.Points, normal.Rand(nil))
			ds.Labels = append(ds.Labels, c)
		}
	}

	return ds, nil
}

// covariance checks shapes and symmetry and returns a gonum symmetric matrix.
func covariance(c, dim int, mean []float64, cov [][]float64) (*mat.SymDense, error) {
	if len(mean) != dim {
		return nil, fmt.Errorf("%s: cluster %d mean has dim %d, want %d: %w",
			methodGaussianClusters, c, len(mean), dim, ErrDimensionMismatch)
	}
	if len(cov) != dim {
		return nil, fmt.Errorf("%s: cluster %d covariance has %d rows, want %d: %w",
			methodGaussianClusters, c, len(cov), dim, ErrDimensionMismatch)
	}
	flat := make([]float64, 0, dim*dim)
	for i, row := range cov {
		if len(row) != dim {
			return nil, fmt.Errorf("%s: cluster %d covariance row %d has %d entries, want %d: %w",
				methodGaussianClusters, c, i, len(row), dim, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			if cov[i][j] != cov[j][i] {
				return nil, fmt.Errorf("%s: cluster %d covariance is asymmetric at (%d,%d): %w",
					methodGaussianClusters, c, i, j, ErrNotPositiveDefinite)
			}
		}
	}

	return mat.NewSymDense(dim, flat), nil
}
