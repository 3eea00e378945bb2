// SPDX-License-Identifier: MIT
// Package operator defines the canonical in-memory cost operator used by every
// other qaoakit package: a register size plus weighted single-qubit (bias) and
// two-qubit (coupling) Z-terms.
//
// A Model is immutable once built. Accessors return copies, so a *Model can be
// shared read-only between goroutines, e.g. by several cost evaluators driven
// from a parallel optimizer.
//
// Construction:
//
//	m, err := operator.FromHyperparameters(3,
//		[]int{1}, []float64{0.3},
//		[][2]int{{0, 1}, {1, 2}}, []float64{0.4, 0.6})
//
// Bit-ordering convention (shared with package analysis):
//
//	pattern[i] is the value of register position i, and a basis index maps to
//	a pattern MSB-first: index = Σ pattern[i]·2^(n-1-i). Index 14 over four
//	qubits is therefore [1 1 1 0].
//
// Serialization:
//   - MarshalText/UnmarshalText: one term per line, "<coeff>, <i>[ <j>]".
//   - MarshalYAML/UnmarshalYAML: fixture form for gopkg.in/yaml.v3.
//
// Errors are sentinels (ErrDimensionMismatch, ErrIndexOutOfRange, ...) wrapped
// with method context; branch with errors.Is.
package operator
