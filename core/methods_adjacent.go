// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood queries, degree statistics, complement and cloning.

package core

import "sort"

// Neighbors returns the sorted neighbors of id.
// Returns ErrNodeNotFound for an unknown node.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nb, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]int, 0, len(nb))
	for v := range nb {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nb, ok := g.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nb), nil
}

// IsRegular reports whether every node has exactly k incident edges.
// An empty graph is k-regular for every k.
// Complexity: O(V).
func (g *Graph) IsRegular(k int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, nb := range g.adj {
		if len(nb) != k {
			return false
		}
	}

	return true
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var s float64
	for _, w := range g.edges {
		s += w
	}

	return s
}

// Complement returns a graph on the same node set whose edges are exactly the
// pairs that are NOT edges of g, each with weight w. Biases are not copied.
// Complexity: O(V²).
func (g *Graph) Complement(w float64) (*Graph, error) {
	nodes := g.Nodes()
	out := NewGraph()
	for _, id := range nodes {
		if err := out.AddNode(id); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if g.HasEdge(nodes[i], nodes[j]) {
				continue
			}
			if err := out.AddEdge(nodes[i], nodes[j], w); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Clone returns a deep copy of nodes, edges and biases.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	for id := range g.nodes {
		c.ensureNode(id)
	}
	for k, w := range g.edges {
		c.edges[k] = w
		c.adj[k[0]][k[1]] = struct{}{}
		c.adj[k[1]][k[0]] = struct{}{}
	}
	for id, b := range g.bias {
		c.bias[id] = b
	}

	return c
}
