// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// impl_regular.go — random simple k-regular graphs.
//
// Canonical model:
//   • Pairing (configuration) model with suitable-stub retries: shuffle all
//     stubs, pair them consecutively, keep every pair that is neither a loop
//     nor a repeat, and reshuffle only the leftover stubs. A round whose
//     leftovers can no longer form any new edge restarts from scratch.
//   • Dense requests (2k > n-1) pair an (n-1-k)-regular graph and return
//     its core.Graph complement.
//
// Contract:
//   • 0 ≤ k < n and k·n even (else ErrInfeasibleRegularGraph).
//   • Node ids distinct and non-negative (ErrDuplicateNode / ErrNegativeNode).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • At most cfg.maxAttempts restarts (else ErrConstructFailed).
//   • Adds every node first; emits edges sorted by node id (U<V).
//
// Determinism:
//   • Leftover stubs are rebuilt in ascending position order, so a fixed seed
//     yields a fixed graph.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qaoakit/core"
	"github.com/katalvlaran/qaoakit/operator"
)

// RegularGraph returns a Constructor that adds a random simple k-regular
// graph over nodes.
// Complexity: expected O(n·k) per attempt for k ≤ (n-1)/2; O(n²) when the
// complement is taken.
func RegularGraph(k int, nodes []int) Constructor {
	ids := append([]int(nil), nodes...)

	return func(g *core.Graph, cfg builderConfig) error {
		n := len(ids)
		if k < 0 || k >= n || (k*n)%2 != 0 {
			return fmt.Errorf("%s: k=%d, n=%d: %w", methodRegularGraph, k, n, ErrInfeasibleRegularGraph)
		}
		if _, err := validateNodes(methodRegularGraph, ids); err != nil {
			return err
		}
		if err := requireRand(methodRegularGraph, cfg); err != nil {
			return err
		}

		dense := 2*k > n-1
		d := k
		if dense {
			d = n - 1 - k
		}

		var (
			edges map[[2]int]struct{}
			ok    bool
		)
		for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
			if edges, ok = tryPairing(n, d, cfg); ok {
				break
			}
		}
		if !ok {
			return fmt.Errorf("%s: no valid pairing after %d attempts: %w",
				methodRegularGraph, cfg.maxAttempts, ErrConstructFailed)
		}

		// The pairing lives on positions; lift it onto the node ids.
		shape := core.NewGraph()
		for _, id := range ids {
			if err := shape.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodRegularGraph, id, err)
			}
		}
		for e := range edges {
			if err := shape.AddEdge(ids[e[0]], ids[e[1]], DefaultEdgeWeight); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d): %w", methodRegularGraph, ids[e[0]], ids[e[1]], err)
			}
		}
		if dense {
			var err error
			if shape, err = shape.Complement(DefaultEdgeWeight); err != nil {
				return fmt.Errorf("%s: complement: %w", methodRegularGraph, err)
			}
		}

		for _, id := range shape.Nodes() {
			if err := g.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodRegularGraph, id, err)
			}
		}
		for _, e := range shape.Edges() {
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(e.U, e.V, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", methodRegularGraph, e.U, e.V, w, err)
			}
		}

		return nil
	}
}

// tryPairing runs one pairing attempt for a d-regular graph on positions
// 0..n-1. It returns (edges, false) when the leftover stubs get stuck.
func tryPairing(n, d int, cfg builderConfig) (map[[2]int]struct{}, bool) {
	edges := make(map[[2]int]struct{}, n*d/2)
	stubs := make([]int, 0, n*d)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			stubs = append(stubs, i)
		}
	}

	for len(stubs) > 0 {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		leftover := make(map[int]int)
		for i := 0; i+1 < len(stubs); i += 2 {
			a, b := stubs[i], stubs[i+1]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, dup := edges[key]; a != b && !dup {
				edges[key] = struct{}{}
				continue
			}
			leftover[a]++
			leftover[b]++
		}

		if !suitable(edges, leftover) {
			return nil, false
		}

		owners := make([]int, 0, len(leftover))
		for v := range leftover {
			owners = append(owners, v)
		}
		sort.Ints(owners)
		stubs = stubs[:0]
		for _, v := range owners {
			for c := 0; c < leftover[v]; c++ {
				stubs = append(stubs, v)
			}
		}
	}

	return edges, true
}

// suitable reports whether the leftover stubs could still form at least one
// new edge, i.e. some pair of distinct owners is not yet connected.
func suitable(edges map[[2]int]struct{}, leftover map[int]int) bool {
	if len(leftover) == 0 {
		return true
	}
	owners := make([]int, 0, len(leftover))
	for v := range leftover {
		owners = append(owners, v)
	}
	sort.Ints(owners)
	for i := 0; i < len(owners); i++ {
		for j := i + 1; j < len(owners); j++ {
			if _, in := edges[[2]int{owners[i], owners[j]}]; !in {
				return true
			}
		}
	}

	return false
}

// RandomRegular generates a model whose couplings form a random simple
// k-regular graph on nodes. Weighted instances draw each coupling from
// U[0,1) unless a later WithWeightFn overrides it; unweighted instances use
// coupling 1. There are no single terms. The register size is max(node)+1.
//
// Errors: ErrInfeasibleRegularGraph, ErrDuplicateNode, ErrNegativeNode,
// ErrNeedRandSource, ErrConstructFailed.
func RandomRegular(k int, nodes []int, weighted bool, opts ...BuilderOption) (*operator.Model, error) {
	var bopts []BuilderOption
	if weighted {
		bopts = append([]BuilderOption{WithWeightFn(UnitUniformWeightFn)}, opts...)
	} else {
		bopts = append(append(bopts, opts...), WithWeightFn(DefaultWeightFn))
	}

	g, err := BuildGraph(bopts, RegularGraph(k, nodes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomRegular, err)
	}
	width, _ := validateNodes(methodRandomRegular, nodes)

	return modelFromGraph(methodRandomRegular, g, width)
}
