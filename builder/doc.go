// Package builder generates cost-operator instances and the weighted graphs
// behind them.
//
// Two layers share one configuration mechanism (BuilderOption → builderConfig):
//
//   - Graph constructors (Constructor closures) composed by BuildGraph:
//     – Cycle(n):            ring 0—1—…—(n-1)—0.
//     – Complete(nodes):     every pair of the given nodes.
//     – RegularGraph(k, ns): random simple k-regular graph.
//   - Model generators returning *operator.Model:
//     – Random(qubits):                     random singles and pairs.
//     – RingOfDisagrees(n):                 unit couplings around a ring.
//     – RandomRegular(k, nodes, weighted):  couplings on a random k-regular graph.
//     – FromDistances(dm):                  pair (i,j) weighted by dm[i][j].
//   - Coupling distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//       UnitUniformWeightFn, NormalWeightFn, SignWeightFn.
//   - RNG plumbing: WithSeed / WithRand, and DeriveRand for per-worker streams.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Generators never panic; they return sentinel errors wrapped with the
//     method name (errors.Is compatible).
//
// Stochastic generators consume the injected *rand.Rand (math/rand/v2) and
// nothing else; there is no global random state.
package builder
