// Package builder_test contains functional tests for the graph constructors
// and model generators: topology, counts, determinism and error contracts.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qaoakit/builder"
	"github.com/katalvlaran/qaoakit/core"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Cycle(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Complete([]int{10, 11}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 10, 11}, g.Nodes())
	assert.Equal(t, 5, g.EdgeCount())
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.IsRegular(2))
	for i := 0; i < 5; i++ {
		w, ok := g.Weight(i, (i+1)%5)
		require.True(t, ok, "edge %d—%d", i, (i+1)%5)
		assert.Equal(t, builder.DefaultEdgeWeight, w)
	}

	_, err = builder.BuildGraph(nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrInvalidSize)
}

func TestCycle_WeightFn(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(-0.5)}, builder.Cycle(3))
	require.NoError(t, err)
	assert.InDelta(t, -1.5, g.TotalWeight(), 1e-12)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete([]int{3, 1, 4}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, g.Nodes())
	assert.Equal(t, []core.Edge{
		{U: 1, V: 3, Weight: 1},
		{U: 1, V: 4, Weight: 1},
		{U: 3, V: 4, Weight: 1},
	}, g.Edges())

	_, err = builder.BuildGraph(nil, builder.Complete(nil))
	assert.ErrorIs(t, err, builder.ErrInvalidSize)
	_, err = builder.BuildGraph(nil, builder.Complete([]int{1, 1}))
	assert.ErrorIs(t, err, builder.ErrDuplicateNode)
	_, err = builder.BuildGraph(nil, builder.Complete([]int{0, -2}))
	assert.ErrorIs(t, err, builder.ErrNegativeNode)
}

func TestRegularGraph(t *testing.T) {
	tests := []struct {
		k, n int
	}{
		{0, 1}, {0, 5}, {1, 2}, {2, 7}, {3, 8}, {3, 10},
		{4, 5}, {6, 10}, {9, 10}, {4, 9}, {5, 20},
	}
	for _, tc := range tests {
		nodes := make([]int, tc.n)
		for i := range nodes {
			nodes[i] = 3 * i
		}
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(int64(tc.k*100 + tc.n))}, builder.RegularGraph(tc.k, nodes))
		require.NoError(t, err, "k=%d n=%d", tc.k, tc.n)

		assert.Equal(t, nodes, g.Nodes(), "k=%d n=%d", tc.k, tc.n)
		assert.Equal(t, tc.k*tc.n/2, g.EdgeCount(), "k=%d n=%d", tc.k, tc.n)
		assert.True(t, g.IsRegular(tc.k), "k=%d n=%d", tc.k, tc.n)
		for _, e := range g.Edges() {
			assert.NotEqual(t, e.U, e.V)
		}
	}
}

// A dense request pairs the (n-1-k)-regular graph and complements it, so with
// the same seed it is exactly the complement of the sparse request.
func TestRegularGraph_DenseIsComplement(t *testing.T) {
	nodes := []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}
	build := func(k int) *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(77)}, builder.RegularGraph(k, nodes))
		require.NoError(t, err)
		return g
	}
	sparse, dense := build(2), build(7)
	require.True(t, dense.IsRegular(7))

	inv, err := dense.Complement(builder.DefaultEdgeWeight)
	require.NoError(t, err)
	assert.Equal(t, sparse.Edges(), inv.Edges())
	assert.Equal(t, nodes, dense.Nodes())
}

func TestRegularGraph_Infeasible(t *testing.T) {
	seed := []builder.BuilderOption{builder.WithSeed(1)}
	for _, tc := range []struct{ k, n int }{{3, 5}, {5, 5}, {6, 5}, {-1, 4}, {0, 0}, {1, 3}} {
		nodes := make([]int, tc.n)
		for i := range nodes {
			nodes[i] = i
		}
		_, err := builder.BuildGraph(seed, builder.RegularGraph(tc.k, nodes))
		assert.ErrorIs(t, err, builder.ErrInfeasibleRegularGraph, "k=%d n=%d", tc.k, tc.n)
		assert.ErrorIs(t, err, builder.ErrInvalidSize, "k=%d n=%d", tc.k, tc.n)
	}

	_, err := builder.BuildGraph(seed, builder.RegularGraph(1, []int{0, 0}))
	assert.ErrorIs(t, err, builder.ErrDuplicateNode)

	_, err = builder.BuildGraph(nil, builder.RegularGraph(2, []int{0, 1, 2}))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRegularGraph_Deterministic(t *testing.T) {
	nodes := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RegularGraph(3, nodes))
		require.NoError(t, err)
		return g.Edges()
	}

	assert.Equal(t, build(42), build(42))
	assert.NotEqual(t, build(42), build(43), "different seeds should give different graphs on 12 nodes")
}
