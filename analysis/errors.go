// SPDX-License-Identifier: MIT
// Package: qaoakit/analysis
//
// errors.go — sentinel errors; every returned error wraps one of these.

package analysis

import "errors"

var (
	// ErrInvalidDistribution indicates an empty distribution, a length that is
	// not a power of two ≥ 2, a negative or NaN entry, or a sum off 1.
	ErrInvalidDistribution = errors.New("analysis: invalid distribution")

	// ErrLengthMismatch indicates paired inputs of different (or zero) length.
	ErrLengthMismatch = errors.New("analysis: length mismatch")

	// ErrInvalidBit indicates a pattern value other than 0 or 1.
	ErrInvalidBit = errors.New("analysis: bit must be 0 or 1")

	// ErrIndexOutOfRange indicates a basis index outside [0, 2^n).
	ErrIndexOutOfRange = errors.New("analysis: index out of range")

	// ErrInvalidTemperature indicates a negative or NaN inverse temperature.
	ErrInvalidTemperature = errors.New("analysis: invalid inverse temperature")

	// ErrNilModel indicates a nil model passed to an Evaluator.
	ErrNilModel = errors.New("analysis: model is nil")
)
