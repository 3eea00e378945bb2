// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// validators.go — parameter checks shared by generators.
// Each helper returns a wrapped sentinel with the method tag as prefix.

package builder

import (
	"fmt"
	"math"
)

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %g: %w",
			method, MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}

// validateNodes checks that nodes holds distinct non-negative ids and returns
// max(id)+1, the register size that covers them (0 for an empty list).
// Complexity: O(n) time, O(n) space.
func validateNodes(method string, nodes []int) (int, error) {
	seen := make(map[int]struct{}, len(nodes))
	width := 0
	for _, id := range nodes {
		if id < 0 {
			return 0, fmt.Errorf("%s: node %d: %w", method, id, ErrNegativeNode)
		}
		if _, dup := seen[id]; dup {
			return 0, fmt.Errorf("%s: node %d: %w", method, id, ErrDuplicateNode)
		}
		seen[id] = struct{}{}
		if id+1 > width {
			width = id + 1
		}
	}

	return width, nil
}

// requireRand reports ErrNeedRandSource when cfg carries no RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// sequence returns the ids 0..n-1.
func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
