// SPDX-License-Identifier: MIT
// Package: qaoakit/analysis
//
// pattern.go — bit-patterns and their basis indices.

package analysis

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/qaoakit/operator"
)

const (
	methodPatternFromIndex = "PatternFromIndex"
	methodParsePattern     = "ParsePattern"

	// MaxPatternBits bounds pattern width so indices fit in an int.
	MaxPatternBits = 62
)

// Pattern is a classical bit assignment; position p is register position p.
type Pattern []uint8

// PatternFromIndex expands basis index i over n qubits, MSB-first.
// Errors: ErrIndexOutOfRange for n outside [1, MaxPatternBits] or i outside [0, 2^n).
func PatternFromIndex(i, n int) (Pattern, error) {
	if n < 1 || n > MaxPatternBits {
		return nil, fmt.Errorf("%s: n=%d: %w", methodPatternFromIndex, n, ErrIndexOutOfRange)
	}
	if i < 0 || i >= 1<<uint(n) {
		return nil, fmt.Errorf("%s: index %d over %d qubits: %w", methodPatternFromIndex, i, n, ErrIndexOutOfRange)
	}
	p := make(Pattern, n)
	for pos := range p {
		p[pos] = operator.BasisBit(uint64(i), pos, n)
	}
	return p, nil
}

// Index returns the basis index of p, MSB-first. Values other than 0 count
// as 1.
func (p Pattern) Index() int {
	idx := 0
	for _, b := range p {
		idx <<= 1
		if b != 0 {
			idx |= 1
		}
	}
	return idx
}

// Complement returns the pattern with every bit flipped.
func (p Pattern) Complement() Pattern {
	out := make(Pattern, len(p))
	for i, b := range p {
		out[i] = 1 - b&1
	}
	return out
}

// Validate reports ErrInvalidBit for any value other than 0 or 1.
func (p Pattern) Validate() error {
	for i, b := range p {
		if b > 1 {
			return fmt.Errorf("pattern[%d]=%d: %w", i, b, ErrInvalidBit)
		}
	}
	return nil
}

// String renders the bits without separators, e.g. "1110".
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, b := range p {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}

// ParsePattern reads "1110", "1 1 1 0" or "1,1,1,0".
// Errors: ErrInvalidBit for any other character, ErrLengthMismatch when empty.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	for _, r := range s {
		switch r {
		case '0', '1':
			p = append(p, uint8(r-'0'))
		case ' ', '\t', ',', '[', ']', '\n', '\r':
		default:
			return nil, fmt.Errorf("%s: %q: %w", methodParsePattern, r, ErrInvalidBit)
		}
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%s: empty pattern: %w", methodParsePattern, ErrLengthMismatch)
	}
	return p, nil
}

// qubitsFor returns n when length == 2^n with n ≥ 1.
func qubitsFor(length int) (int, bool) {
	if length < 2 || length&(length-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros(uint(length)), true
}
