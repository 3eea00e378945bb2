// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrInvalidSize).
//   • Adds nodes 0..n-1 in ascending order.
//   • Emits edges in stable order i — (i+1)%n for i=0..n-1.
//   • Weight policy: cfg.weightFn(cfg.rng) per edge, in emission order.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qaoakit/core"
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrInvalidSize)
		}

		for i := 0; i < n; i++ {
			if err := g.AddNode(i); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodCycle, i, err)
			}
		}

		// i == n-1 closes the ring onto node 0.
		for i := 0; i < n; i++ {
			u, v := i, (i+1)%n
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
