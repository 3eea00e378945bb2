// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// api.go — public entry-points for the builder package.
//
// Design contract:
//   - Graph level: one orchestrator, BuildGraph(bopts, cons...). It creates g,
//     resolves cfg, and runs cons in order.
//   - Model level: Random, RingOfDisagrees, RandomRegular and FromDistances
//     return a validated *operator.Model. The graph-backed ones compose
//     constructors and convert through converters.FromGraph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical output.
//   - Safety: never panic; return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qaoakit/converters"
	"github.com/katalvlaran/qaoakit/core"
	"github.com/katalvlaran/qaoakit/operator"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately; the partial graph
// is discarded.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// =============================================================================
// Graph constructors - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)             impl_cycle.go     nodes 0..n-1, edges i—(i+1)%n, n ≥ 3.
// Complete(nodes)      impl_complete.go  every pair of the given nodes.
// RegularGraph(k, ns)  impl_regular.go   random simple k-regular graph on ns.
//
// Every closure adds its nodes before its edges, emits edges in a stable
// documented order, and draws weights from cfg.weightFn(cfg.rng).

// =============================================================================
// Model generators - implemented in impl_*.go
// =============================================================================
//
// Random(qubits, opts...)                  impl_random.go
// RingOfDisagrees(n)                       impl_ring.go
// RandomRegular(k, nodes, weighted, ...)   impl_regular.go
// FromDistances(dm, opts...)               impl_distances.go

// modelFromGraph converts a built graph into a Model over an n-qubit register.
func modelFromGraph(method string, g *core.Graph, n int) (*operator.Model, error) {
	m, err := converters.FromGraph(g, converters.WithQubitCount(n))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m, nil
}
