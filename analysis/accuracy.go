// SPDX-License-Identifier: MIT
// Package: qaoakit/analysis
//
// accuracy.go — scoring a candidate partition against known labels.

package analysis

import "fmt"

const methodAccuracy = "Accuracy"

// Score is the percentage of positions where a candidate agrees with the
// labels, for the candidate as given and for its complement. Because a
// partition and its complement describe the same cut, the better of the two
// is the meaningful figure; Original + Complement is always 100.
type Score struct {
	Original   float64
	Complement float64
}

// Best returns max(Original, Complement).
func (s Score) Best() float64 {
	if s.Complement > s.Original {
		return s.Complement
	}
	return s.Original
}

// Accuracy compares candidate to labels position by position.
//
// Example: candidate 0101 against labels 1100 agrees at positions 1 and 2,
// so both scores are 50.
// Errors: ErrLengthMismatch (different or zero lengths), ErrInvalidBit.
// Complexity: O(n).
func Accuracy(candidate, labels Pattern) (Score, error) {
	if len(candidate) != len(labels) || len(candidate) == 0 {
		return Score{}, fmt.Errorf("%s: candidate %d vs labels %d: %w",
			methodAccuracy, len(candidate), len(labels), ErrLengthMismatch)
	}
	if err := candidate.Validate(); err != nil {
		return Score{}, fmt.Errorf("%s: candidate %w", methodAccuracy, err)
	}
	if err := labels.Validate(); err != nil {
		return Score{}, fmt.Errorf("%s: labels %w", methodAccuracy, err)
	}

	match := 0
	for i := range candidate {
		if candidate[i] == labels[i] {
			match++
		}
	}
	n := float64(len(candidate))

	return Score{
		Original:   100 * float64(match) / n,
		Complement: 100 * float64(len(candidate)-match) / n,
	}, nil
}
