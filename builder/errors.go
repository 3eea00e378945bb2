// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Algorithms never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates that a size parameter (qubit count, ring length,
// degree, node list) is outside the domain of the requested generator.
var ErrInvalidSize = errors.New("builder: invalid size")

// ErrInfeasibleRegularGraph indicates that no simple k-regular graph exists on
// the requested node count: k < 0, k ≥ n, or k·n odd.
// It wraps ErrInvalidSize, so errors.Is(err, ErrInvalidSize) also holds.
var ErrInfeasibleRegularGraph = fmt.Errorf("builder: no simple regular graph with these parameters: %w", ErrInvalidSize)

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDuplicateNode indicates that a node (qubit) id appears twice in an
// input list that must be a set.
var ErrDuplicateNode = errors.New("builder: duplicate node id")

// ErrNegativeNode indicates a negative node (qubit) id.
var ErrNegativeNode = errors.New("builder: negative node id")

// ErrNilDistances indicates a nil distance matrix passed to FromDistances.
var ErrNilDistances = errors.New("builder: nil distance matrix")

// ErrConstructFailed indicates that the builder exhausted its bounded attempts
// (e.g., pairing restarts in RegularGraph) or met a programmer error such as
// a nil Constructor. Retrying with a different seed usually succeeds.
var ErrConstructFailed = errors.New("builder: construction failed")
