// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qaoakit/core"
)

// TestConcurrentAddEdge adds the same edge from many goroutines; every
// contribution must land in the accumulated weight.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, num)

	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			if err := g.AddEdge(0, 1+id%10, 1); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, 10, g.EdgeCount())
	assert.InDelta(t, float64(num), g.TotalWeight(), 0)
}

// TestConcurrentReaders runs many readers against a finished graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%50, 1))
	}

	var wg sync.WaitGroup
	regular := make([]bool, 50)
	wg.Add(len(regular))
	for r := range regular {
		go func(r int) {
			defer wg.Done()
			_ = g.Edges()
			_ = g.Clone()
			regular[r] = g.IsRegular(2)
		}(r)
	}
	wg.Wait()

	for _, ok := range regular {
		assert.True(t, ok)
	}
}
