// Package converters provides two-way adapters between operator.Model and
// core.Graph.
//
//   - ToGraph: pair terms become edges (duplicate pairs sum), single terms
//     become node biases, every referenced qubit becomes a node.
//   - FromGraph: one pair term per edge and one single term per biased node.
//
// Round-trip: FromGraph(ToGraph(m)) holds the same multiset of terms as m
// (operator.EqualTerms) whenever m has no duplicate pairs. Term order is not
// preserved; FromGraph emits terms in ascending index order.
//
// Graph weights are real. ToGraph rejects a coefficient with a non-zero
// imaginary part with operator.ErrComplexCoefficient.
package converters
