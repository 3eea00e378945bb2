// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Edge, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNode indicates a node id below zero.
	ErrNegativeNode = errors.New("core: node id is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop u—u was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or ±Inf weight or bias.
	ErrBadWeight = errors.New("core: weight is NaN or Inf")
)

// Edge is an undirected weighted edge with normalized endpoints U < V.
type Edge struct {
	U, V   int
	Weight float64
}

// key normalizes an unordered pair to {min, max}.
func key(u, v int) [2]int {
	if u > v {
		return [2]int{v, u}
	}
	return [2]int{u, v}
}

// Graph is an undirected weighted graph over int nodes with optional node bias.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex

	nodes map[int]struct{}         // node set
	edges map[[2]int]float64       // normalized pair → weight
	adj   map[int]map[int]struct{} // node → neighbor set
	bias  map[int]float64          // node → bias (present only when set)
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int]struct{}),
		edges: make(map[[2]int]float64),
		adj:   make(map[int]map[int]struct{}),
		bias:  make(map[int]float64),
	}
}
