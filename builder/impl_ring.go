// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// impl_ring.go — the ring-of-disagrees benchmark instance.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qaoakit/operator"
)

// RingOfDisagrees returns the max-cut instance on the n-node cycle: one pair
// term with coefficient 1 for every ring edge and no single terms. Its best
// cut separates every edge for even n (cost -n) and all but one for odd n
// (cost -(n-1)).
//
// n == 2 yields the single pair (0,1); the closing edge coincides with it.
// Errors: ErrInvalidSize for n < MinRingNodes.
// Complexity: O(n).
func RingOfDisagrees(n int) (*operator.Model, error) {
	if n < MinRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRingOfDisagrees, n, MinRingNodes, ErrInvalidSize)
	}
	if n == MinRingNodes {
		return operator.New(n, nil, []operator.Pair{{A: 0, B: 1, Coeff: complex(DefaultEdgeWeight, 0)}})
	}

	g, err := BuildGraph(nil, Cycle(n))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRingOfDisagrees, err)
	}

	return modelFromGraph(methodRingOfDisagrees, g, n)
}
