// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// impl_distances.go — clustering instances from a distance matrix.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qaoakit/dataset"
	"github.com/katalvlaran/qaoakit/operator"
)

// FromDistances turns an n×n distance matrix into an n-qubit model with one
// pair term (i, j), i < j, per matrix entry above the diagonal, emitted in
// row-major order, coefficient dm[i][j]. Zero distances still produce a term,
// so the model always holds n(n-1)/2 pairs.
//
// Single terms come only from WithBiases, in ascending qubit order; a bias
// outside [0, n) yields operator.ErrIndexOutOfRange.
// Errors: ErrNilDistances.
// Complexity: O(n²).
func FromDistances(dm *dataset.DistanceMatrix, opts ...BuilderOption) (*operator.Model, error) {
	if dm == nil {
		return nil, fmt.Errorf("%s: %w", methodFromDistances, ErrNilDistances)
	}
	cfg := newBuilderConfig(opts...)
	n := dm.N()

	pairs := make([]operator.Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, operator.Pair{A: i, B: j, Coeff: complex(dm.At(i, j), 0)})
		}
	}

	qs := make([]int, 0, len(cfg.biases))
	for q := range cfg.biases {
		qs = append(qs, q)
	}
	sort.Ints(qs)
	singles := make([]operator.Single, 0, len(qs))
	for _, q := range qs {
		singles = append(singles, operator.Single{Qubit: q, Coeff: complex(cfg.biases[q], 0)})
	}

	m, err := operator.New(n, singles, pairs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromDistances, err)
	}

	return m, nil
}
