// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// constants.go — method tags, size minima and defaults shared by generators.

package builder

//-----------------------------------------------------------------------------
// Method name tags
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildGraph      = "BuildGraph"
	methodCycle           = "Cycle"
	methodComplete        = "Complete"
	methodRegularGraph    = "RegularGraph"
	methodRandom          = "Random"
	methodRingOfDisagrees = "RingOfDisagrees"
	methodRandomRegular   = "RandomRegular"
	methodFromDistances   = "FromDistances"
)

//-----------------------------------------------------------------------------
// Size minima
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest simple cycle. Two nodes would need a
// doubled edge to close.
const MinCycleNodes = 3

// MinRingNodes is the smallest ring-of-disagrees instance. A 2-node ring
// collapses onto a single coupling.
const MinRingNodes = 2

//-----------------------------------------------------------------------------
// Defaults and bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the coupling assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// DefaultPairDensity is the inclusion probability of each candidate pair in
// Random.
const DefaultPairDensity = 0.5

// MinProbability and MaxProbability bound every density parameter, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// DefaultMaxAttempts bounds full restarts of the regular-graph pairing.
const DefaultMaxAttempts = 100

// singleDensityUniformCount marks the default single-term policy of Random:
// draw the number of singles uniformly in [0, n) and pick that many qubits.
const singleDensityUniformCount = -1
