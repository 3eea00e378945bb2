// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qaoakit/core"
)

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(3))
	require.NoError(t, g.AddNode(3)) // idempotent
	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(0))
	assert.ErrorIs(t, g.AddNode(-1), core.ErrNegativeNode)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(-1, 1, 1), core.ErrNegativeNode)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.Inf(-1)), core.ErrBadWeight)
	assert.Zero(t, g.EdgeCount(), "rejected edges must leave no trace")
	assert.Zero(t, g.NodeCount())
}

// TestGraph_DuplicateEdgesAccumulate checks that u—v and v—u share one edge.
func TestGraph_DuplicateEdgesAccumulate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0.25))
	require.NoError(t, g.AddEdge(1, 0, 0.5))

	w, ok := g.Weight(1, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.75, w, 1e-15)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.Edge{{U: 0, V: 1, Weight: 0.75}}, g.Edges())
}

func TestGraph_Bias(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.SetBias(4, 0.3))
	require.NoError(t, g.SetBias(4, -0.2))
	require.NoError(t, g.AddEdge(0, 1, 1))

	b, ok := g.Bias(4)
	assert.True(t, ok)
	assert.InDelta(t, -0.2, b, 0)
	_, ok = g.Bias(0)
	assert.False(t, ok)

	assert.Equal(t, []int{0, 1, 4}, g.Nodes(), "biased node without edges is still a node")
	assert.Equal(t, []int{4}, g.BiasedNodes())
	assert.Equal(t, map[int]float64{4: -0.2}, g.Biases())
	assert.ErrorIs(t, g.SetBias(-3, 1), core.ErrNegativeNode)
	assert.ErrorIs(t, g.SetBias(1, math.Inf(1)), core.ErrBadWeight)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(2, 5, 1))
	require.NoError(t, g.RemoveEdge(5, 2))
	assert.False(t, g.HasEdge(2, 5))
	assert.True(t, g.HasNode(2))
	assert.ErrorIs(t, g.RemoveEdge(2, 5), core.ErrEdgeNotFound)

	d, err := g.Degree(5)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestGraph_NeighborsAndDegree(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{0, 3}, {0, 1}, {2, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nb)

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Degree(9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.False(t, g.IsRegular(3))
	assert.InDelta(t, 3.0, g.TotalWeight(), 0)
}

func TestGraph_IsRegular(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%5, 1))
	}
	assert.True(t, g.IsRegular(2))
	assert.False(t, g.IsRegular(3))
	assert.True(t, core.NewGraph().IsRegular(7))
}

func TestGraph_Complement(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%4, 1))
	}
	c, err := g.Complement(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 2, Weight: 2}, {U: 1, V: 3, Weight: 2}}, c.Edges())
	assert.True(t, c.IsRegular(1))
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.SetBias(2, 0.5))

	c := g.Clone()
	require.NoError(t, c.AddEdge(0, 1, 1))
	require.NoError(t, c.SetBias(2, 9))

	w, _ := g.Weight(0, 1)
	assert.InDelta(t, 1.0, w, 0)
	b, _ := g.Bias(2)
	assert.InDelta(t, 0.5, b, 0)
	assert.Equal(t, g.Nodes(), c.Nodes())
}
