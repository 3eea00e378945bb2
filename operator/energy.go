// SPDX-License-Identifier: MIT
// Package: qaoakit/operator
//
// energy.go — classical (diagonal) evaluation of a Model on bit-patterns.
//
// A bit b maps to the Z eigenvalue z = 1 - 2b, so bit 0 ↔ +1 and bit 1 ↔ -1.
// Only the real part of each coefficient contributes to an energy.

package operator

import (
	"fmt"
	"math/bits"
)

const (
	methodEnergy   = "Energy"
	methodCutCost  = "CutCost"
	methodSpectrum = "Spectrum"

	// MaxSpectrumQubits bounds exhaustive enumeration in Spectrum (2^24 energies).
	MaxSpectrumQubits = 24
)

// BasisBit returns the value of register position pos in basis state index
// over an n-qubit register, using the MSB-first convention documented on the
// package. Positions outside [0,n) return 0.
func BasisBit(index uint64, pos, n int) uint8 {
	if pos < 0 || pos >= n {
		return 0
	}
	return uint8((index >> uint(n-1-pos)) & 1)
}

// spin maps a bit to its Z eigenvalue.
func spin(b uint8) float64 {
	if b == 0 {
		return 1
	}
	return -1
}

// checkPattern validates length and alphabet of a bit-pattern.
func (m *Model) checkPattern(method string, pattern []uint8) error {
	if len(pattern) != m.n {
		return fmt.Errorf("%s: pattern length %d != qubit count %d: %w",
			method, len(pattern), m.n, ErrInvalidPattern)
	}
	for i, b := range pattern {
		if b > 1 {
			return fmt.Errorf("%s: pattern[%d]=%d: %w", method, i, b, ErrInvalidPattern)
		}
	}
	return nil
}

// Energy evaluates Σ h_i z_i + Σ J_ab z_a z_b for the given pattern.
// Complexity: O(S + P).
func (m *Model) Energy(pattern []uint8) (float64, error) {
	if err := m.checkPattern(methodEnergy, pattern); err != nil {
		return 0, err
	}

	var e float64
	for _, s := range m.singles {
		e += real(s.Coeff) * spin(pattern[s.Qubit])
	}
	for _, p := range m.pairs {
		e += real(p.Coeff) * spin(pattern[p.A]) * spin(pattern[p.B])
	}

	return e, nil
}

// CutCost returns the max-cut style cost -Σ J_ab·[b_a ≠ b_b]: every coupling
// whose endpoints land on different sides of the partition lowers the cost by
// its weight. Single-qubit terms do not contribute.
// Complexity: O(P).
func (m *Model) CutCost(pattern []uint8) (float64, error) {
	if err := m.checkPattern(methodCutCost, pattern); err != nil {
		return 0, err
	}

	var c float64
	for _, p := range m.pairs {
		if pattern[p.A] != pattern[p.B] {
			c -= real(p.Coeff)
		}
	}

	return c, nil
}

// Spectrum returns Energy for every basis index 0..2^n-1 in index order.
// Returns ErrInvalidSize when n exceeds MaxSpectrumQubits.
//
// Implementation:
//   - Walk indices in Gray-code order so consecutive states differ in one bit,
//     and update the energy incrementally from the terms touching that bit.
//
// Complexity: O(2^n · d) time where d is the mean number of terms per qubit,
// O(2^n) space for the result.
func (m *Model) Spectrum() ([]float64, error) {
	n := m.n
	if n > MaxSpectrumQubits {
		return nil, fmt.Errorf("%s: %d qubits > max %d: %w", methodSpectrum, n, MaxSpectrumQubits, ErrInvalidSize)
	}

	// Per-position term lists so a single flip touches only incident terms.
	bias := make([]float64, n)
	for _, s := range m.singles {
		bias[s.Qubit] += real(s.Coeff)
	}
	type coupling struct {
		other int
		w     float64
	}
	incident := make([][]coupling, n)
	for _, p := range m.pairs {
		w := real(p.Coeff)
		incident[p.A] = append(incident[p.A], coupling{other: p.B, w: w})
		incident[p.B] = append(incident[p.B], coupling{other: p.A, w: w})
	}

	size := uint64(1) << uint(n)
	out := make([]float64, size)
	pattern := make([]uint8, n)

	// All-zero state: every z is +1.
	var e float64
	for _, h := range bias {
		e += h
	}
	for _, p := range m.pairs {
		e += real(p.Coeff)
	}
	out[0] = e

	for k := uint64(1); k < size; k++ {
		// Gray code g(k) differs from g(k-1) in bit tz(k) counted from the LSB.
		lsb := bits.TrailingZeros64(k)
		pos := n - 1 - lsb

		zOld := spin(pattern[pos])
		// Flipping z → -z changes each incident term by -2·term.
		delta := -2 * bias[pos] * zOld
		for _, c := range incident[pos] {
			delta -= 2 * c.w * zOld * spin(pattern[c.other])
		}
		e += delta
		pattern[pos] ^= 1

		gray := k ^ (k >> 1)
		out[gray] = e
	}

	return out, nil
}
