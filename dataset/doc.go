// Package dataset produces the classical inputs of clustering instances:
// labelled Gaussian point clouds and the pairwise distance matrices built
// from them.
//
//   - GaussianClusters draws each cluster from a multivariate normal
//     (gonum stat/distmv) and concatenates the clusters in order; Labels[i]
//     is the cluster index of Points[i].
//   - PairwiseDistances evaluates a Metric over every point pair and returns
//     a DistanceMatrix: square, symmetric, zero diagonal, non-negative,
//     finite. The matrix is stored as a gonum *mat.SymDense, so symmetry
//     holds by construction.
//   - NewDistanceMatrix adopts an externally supplied matrix after the same
//     checks.
//
// Randomness flows only through an injected *rand.Rand (math/rand/v2), set
// with WithSeed or WithRand.
package dataset
