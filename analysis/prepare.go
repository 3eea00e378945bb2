// SPDX-License-Identifier: MIT
// Package: qaoakit/analysis
//
// prepare.go — bit-flip recipe for loading a classical state.

package analysis

import "fmt"

const methodPrepareClassicalState = "PrepareClassicalState"

// Flip is a single X gate on Qubit, applied to the all-zero state.
type Flip struct {
	Qubit int
}

// PrepareClassicalState returns the flips that take |0…0⟩ to the basis state
// where register[i] holds target[i]: one Flip per target bit equal to 1, in
// register order. An all-zero target yields an empty, non-nil slice.
//
// Errors: ErrLengthMismatch, ErrInvalidBit.
// Complexity: O(n).
func PrepareClassicalState(register []int, target Pattern) ([]Flip, error) {
	if len(register) != len(target) {
		return nil, fmt.Errorf("%s: register %d vs target %d: %w",
			methodPrepareClassicalState, len(register), len(target), ErrLengthMismatch)
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPrepareClassicalState, err)
	}

	flips := make([]Flip, 0, len(target))
	for i, b := range target {
		if b == 1 {
			flips = append(flips, Flip{Qubit: register[i]})
		}
	}
	return flips, nil
}

// Apply sets the flipped qubits of an n-qubit all-zero pattern and returns
// it. Qubits outside [0, n) yield ErrIndexOutOfRange.
func Apply(flips []Flip, n int) (Pattern, error) {
	p := make(Pattern, n)
	for _, f := range flips {
		if f.Qubit < 0 || f.Qubit >= n {
			return nil, fmt.Errorf("Apply: qubit %d not in [0,%d): %w", f.Qubit, n, ErrIndexOutOfRange)
		}
		p[f.Qubit] ^= 1
	}
	return p, nil
}
