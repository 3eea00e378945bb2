// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// impl_complete.go — implementation of Complete(nodes) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qaoakit/core"
)

// Complete returns a Constructor that connects every pair of the given nodes.
// Edges are emitted for positions i < j in input order, one weight draw each.
// Errors: ErrInvalidSize (empty list), ErrNegativeNode, ErrDuplicateNode.
// Complexity: O(n²).
func Complete(nodes []int) Constructor {
	ids := append([]int(nil), nodes...)

	return func(g *core.Graph, cfg builderConfig) error {
		if len(ids) == 0 {
			return fmt.Errorf("%s: empty node list: %w", methodComplete, ErrInvalidSize)
		}
		if _, err := validateNodes(methodComplete, ids); err != nil {
			return err
		}

		for _, id := range ids {
			if err := g.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodComplete, id, err)
			}
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", methodComplete, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}
