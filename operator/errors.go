// SPDX-License-Identifier: MIT
// Package: qaoakit/operator
//
// errors.go — sentinel errors for the operator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with fmt.Errorf("%s: ...: %w", method, ..., ErrX).
//   • Constructors validate fully before allocating the Model (no partial results).

package operator

import "errors"

var (
	// ErrDimensionMismatch indicates index and coefficient sequences of different length.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrIndexOutOfRange indicates a qubit index outside [0, QubitCount).
	ErrIndexOutOfRange = errors.New("operator: qubit index out of range")

	// ErrInvalidSize indicates a register size below one, or a register too
	// large for exhaustive enumeration (Spectrum).
	ErrInvalidSize = errors.New("operator: invalid register size")

	// ErrSelfCoupling indicates a two-qubit term whose endpoints coincide.
	ErrSelfCoupling = errors.New("operator: pair term couples a qubit to itself")

	// ErrDuplicateSingle indicates the same qubit carries more than one bias term.
	ErrDuplicateSingle = errors.New("operator: duplicate single-qubit term")

	// ErrInvalidPattern indicates a bit-pattern of wrong length or with values other than 0/1.
	ErrInvalidPattern = errors.New("operator: invalid bit-pattern")

	// ErrComplexCoefficient indicates a coefficient with a non-zero imaginary
	// part where only real values are representable (YAML fixtures).
	ErrComplexCoefficient = errors.New("operator: complex coefficient not representable")

	// ErrSyntax indicates a malformed line in the text serialization.
	ErrSyntax = errors.New("operator: syntax error")
)
