package converters

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qaoakit/core"
	"github.com/katalvlaran/qaoakit/operator"
)

var (
	// ErrNilModel indicates a nil *operator.Model argument.
	ErrNilModel = errors.New("converters: model is nil")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrEmptyGraph indicates a graph without nodes; no register size can be derived.
	ErrEmptyGraph = errors.New("converters: graph has no nodes")
)

const (
	methodToGraph   = "ToGraph"
	methodFromGraph = "FromGraph"
)

// ToGraph converts m into a weighted graph with node biases.
//
// Steps:
//  1. Add nodes for every referenced qubit (or every position with WithAllQubits).
//  2. Attach each single term as the bias of its qubit.
//  3. Add each pair term to its edge; repeated pairs accumulate.
//
// Errors: ErrNilModel, operator.ErrComplexCoefficient.
// Complexity: O(S + P) time, O(V + E) space.
func ToGraph(m *operator.Model, opts ...Option) (*core.Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodToGraph, ErrNilModel)
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()

	if cfg.allQubits {
		for q := 0; q < m.QubitCount(); q++ {
			if err := g.AddNode(q); err != nil {
				return nil, fmt.Errorf("%s: AddNode(%d): %w", methodToGraph, q, err)
			}
		}
	}
	for _, q := range m.Qubits() {
		if err := g.AddNode(q); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", methodToGraph, q, err)
		}
	}

	for _, s := range m.Singles() {
		if cfg.dropZero && s.Coeff == 0 {
			continue
		}
		if imag(s.Coeff) != 0 {
			return nil, fmt.Errorf("%s: single on qubit %d: %w", methodToGraph, s.Qubit, operator.ErrComplexCoefficient)
		}
		if err := g.SetBias(s.Qubit, real(s.Coeff)); err != nil {
			return nil, fmt.Errorf("%s: SetBias(%d): %w", methodToGraph, s.Qubit, err)
		}
	}

	for _, p := range m.Pairs() {
		if cfg.dropZero && p.Coeff == 0 {
			continue
		}
		if imag(p.Coeff) != 0 {
			return nil, fmt.Errorf("%s: pair (%d,%d): %w", methodToGraph, p.A, p.B, operator.ErrComplexCoefficient)
		}
		if err := g.AddEdge(p.A, p.B, real(p.Coeff)); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodToGraph, p.A, p.B, err)
		}
	}

	return g, nil
}

// FromGraph converts g back into an operator.Model: one pair term per edge
// (ascending (U,V)) and one single term per biased node (ascending node).
// The register size is max(node)+1 unless WithQubitCount is given; a size
// that does not cover every node yields operator.ErrIndexOutOfRange.
//
// Complexity: O(V log V + E log E).
func FromGraph(g *core.Graph, opts ...Option) (*operator.Model, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodFromGraph, ErrNilGraph)
	}
	cfg := newConfig(opts...)

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromGraph, ErrEmptyGraph)
	}
	n := cfg.qubitCount
	if n == 0 {
		n = nodes[len(nodes)-1] + 1
	}

	biases := g.Biases()
	singles := make([]operator.Single, 0, len(biases))
	for _, id := range g.BiasedNodes() {
		singles = append(singles, operator.Single{Qubit: id, Coeff: complex(biases[id], 0)})
	}

	edges := g.Edges()
	pairs := make([]operator.Pair, 0, len(edges))
	for _, e := range edges {
		pairs = append(pairs, operator.Pair{A: e.U, B: e.V, Coeff: complex(e.Weight, 0)})
	}

	m, err := operator.New(n, singles, pairs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromGraph, err)
	}

	return m, nil
}
