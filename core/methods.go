// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Node, edge and bias mutation plus point queries.
// Determinism:
//   - Nodes() and Edges() return ascending order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"math"
	"sort"
)

// AddNode inserts node id. Re-adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return ErrNegativeNode
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// ensureNode adds id if absent. Caller holds the write lock.
func (g *Graph) ensureNode(id int) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.adj[id] = make(map[int]struct{})
}

// AddEdge adds weight w to the edge u—v, creating both endpoints and the edge
// as needed. Adding an existing pair (in either orientation) accumulates the
// weight, so duplicate couplings collapse into one edge.
//
// Errors: ErrNegativeNode, ErrLoopNotAllowed (u == v), ErrBadWeight (NaN/Inf).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if u < 0 || v < 0 {
		return ErrNegativeNode
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(u)
	g.ensureNode(v)
	g.edges[key(u, v)] += w
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}

	return nil
}

// SetBias sets the bias of node id, creating the node if needed. Setting a
// bias replaces any previous value.
// Complexity: O(1) amortized.
func (g *Graph) SetBias(id int, b float64) error {
	if id < 0 {
		return ErrNegativeNode
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)
	g.bias[id] = b

	return nil
}

// RemoveEdge deletes edge u—v. Endpoints stay in the graph.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := key(u, v)
	if _, ok := g.edges[k]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, k)
	delete(g.adj[u], v)
	delete(g.adj[v], u)

	return nil
}

// HasNode reports whether id is a node.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether u—v is an edge (orientation-insensitive).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[key(u, v)]

	return ok
}

// Weight returns the weight of u—v; absent edges report (0, false).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.edges[key(u, v)]

	return w, ok
}

// Bias returns the bias of node id; nodes without a bias report (0, false).
func (g *Graph) Bias(id int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	b, ok := g.bias[id]

	return b, ok
}

// Biases returns a copy of the node → bias map.
func (g *Graph) Biases() map[int]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[int]float64, len(g.bias))
	for id, b := range g.bias {
		out[id] = b
	}

	return out
}

// BiasedNodes returns the nodes that carry a bias, ascending.
func (g *Graph) BiasedNodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.bias))
	for id := range g.bias {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// Nodes returns all node ids, ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// Edges returns all edges with U < V, sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for k, w := range g.edges {
		out = append(out, Edge{U: k[0], V: k[1], Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
