// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/qaoakit/core"
)

// ExampleGraph shows duplicate couplings collapsing into one edge and a bias
// living on a node without edges.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 0.4)
	_ = g.AddEdge(1, 0, 0.1)
	_ = g.SetBias(2, 0.3)

	fmt.Println(g.Nodes())
	fmt.Println(g.Edges())
	// Output:
	// [0 1 2]
	// [{0 1 0.5}]
}
