// SPDX-License-Identifier: MIT
// Package core defines Graph, the weighted undirected graph used as the
// graph-side representation of a cost operator.
//
// Nodes are register positions (non-negative ints). Each unordered node pair
// carries at most one edge whose weight is the coupling coefficient; adding
// the same pair again accumulates into that weight. A node may additionally
// carry a bias (the single-qubit coefficient), which is node data and never
// an edge.
//
// Invariants:
//   - No self-loops (ErrLoopNotAllowed).
//   - Node ids are ≥ 0 (ErrNegativeNode).
//   - Weights and biases are finite (ErrBadWeight).
//   - Nodes(), Edges() and Neighbors() are sorted ascending for stable output.
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes, edges and biases. Mutations take the
//	write lock; all queries take the read lock, so a fully built graph can be
//	read from many goroutines (e.g. a renderer and an evaluator) at once.
package core
