// SPDX-License-Identifier: MIT
// Package: qaoakit/operator
//
// model.go — Model type, constructors and read-only accessors.
//
// Contract:
//   • QubitCount ≥ 1.
//   • Single qubit indices are unique and in [0, QubitCount).
//   • Pair endpoints differ and are in [0, QubitCount); duplicate pairs are kept
//     as given (codecs treat them additively).
//   • Term order is preserved exactly as supplied.

package operator

import (
	"fmt"
	"sort"
)

const (
	methodNew                 = "New"
	methodFromHyperparameters = "FromHyperparameters"
	minQubits                 = 1
)

// Single is a one-qubit bias term Coeff·Z_Qubit.
type Single struct {
	Qubit int
	Coeff complex128
}

// Pair is a two-qubit coupling term Coeff·Z_A·Z_B over an unordered pair.
type Pair struct {
	A, B  int
	Coeff complex128
}

// Key returns the pair endpoints normalized as {min, max}.
func (p Pair) Key() [2]int {
	if p.A > p.B {
		return [2]int{p.B, p.A}
	}
	return [2]int{p.A, p.B}
}

// Model is an immutable cost operator over QubitCount qubits.
type Model struct {
	n       int
	singles []Single
	pairs   []Pair
}

// New validates the given terms and returns a Model that owns private copies
// of both slices.
// Complexity: O(S + P) time and space.
func New(qubitCount int, singles []Single, pairs []Pair) (*Model, error) {
	if err := validate(methodNew, qubitCount, singles, pairs); err != nil {
		return nil, err
	}

	return &Model{
		n:       qubitCount,
		singles: append([]Single(nil), singles...),
		pairs:   append([]Pair(nil), pairs...),
	}, nil
}

// FromHyperparameters builds a Model from parallel index/coefficient slices.
// singles[i] carries bias biases[i]; pairs[i] carries coupling couplings[i].
//
// Errors:
//   - ErrDimensionMismatch if len(singles) != len(biases) or len(pairs) != len(couplings).
//   - ErrIndexOutOfRange if any index is < 0 or ≥ qubitCount.
//   - ErrInvalidSize, ErrSelfCoupling, ErrDuplicateSingle as for New.
func FromHyperparameters(qubitCount int, singles []int, biases []float64, pairs [][2]int, couplings []float64) (*Model, error) {
	if len(singles) != len(biases) {
		return nil, fmt.Errorf("%s: %d singles vs %d biases: %w",
			methodFromHyperparameters, len(singles), len(biases), ErrDimensionMismatch)
	}
	if len(pairs) != len(couplings) {
		return nil, fmt.Errorf("%s: %d pairs vs %d couplings: %w",
			methodFromHyperparameters, len(pairs), len(couplings), ErrDimensionMismatch)
	}

	ss := make([]Single, len(singles))
	for i, q := range singles {
		ss[i] = Single{Qubit: q, Coeff: complex(biases[i], 0)}
	}
	ps := make([]Pair, len(pairs))
	for i, p := range pairs {
		ps[i] = Pair{A: p[0], B: p[1], Coeff: complex(couplings[i], 0)}
	}

	if err := validate(methodFromHyperparameters, qubitCount, ss, ps); err != nil {
		return nil, err
	}

	return &Model{n: qubitCount, singles: ss, pairs: ps}, nil
}

// validate enforces the Model contract; the priority order is
// size → singles (range, duplicates) → pairs (range, self-coupling).
func validate(method string, n int, singles []Single, pairs []Pair) error {
	if n < minQubits {
		return fmt.Errorf("%s: qubit count %d < %d: %w", method, n, minQubits, ErrInvalidSize)
	}

	seen := make(map[int]struct{}, len(singles))
	for i, s := range singles {
		if s.Qubit < 0 || s.Qubit >= n {
			return fmt.Errorf("%s: single[%d] qubit %d not in [0,%d): %w",
				method, i, s.Qubit, n, ErrIndexOutOfRange)
		}
		if _, dup := seen[s.Qubit]; dup {
			return fmt.Errorf("%s: single[%d] qubit %d: %w", method, i, s.Qubit, ErrDuplicateSingle)
		}
		seen[s.Qubit] = struct{}{}
	}

	for i, p := range pairs {
		if p.A < 0 || p.A >= n || p.B < 0 || p.B >= n {
			return fmt.Errorf("%s: pair[%d] (%d,%d) not in [0,%d): %w",
				method, i, p.A, p.B, n, ErrIndexOutOfRange)
		}
		if p.A == p.B {
			return fmt.Errorf("%s: pair[%d] (%d,%d): %w", method, i, p.A, p.B, ErrSelfCoupling)
		}
	}

	return nil
}

// QubitCount returns the register size.
func (m *Model) QubitCount() int { return m.n }

// Singles returns a copy of the single-qubit terms in construction order.
func (m *Model) Singles() []Single { return append([]Single(nil), m.singles...) }

// Pairs returns a copy of the two-qubit terms in construction order.
func (m *Model) Pairs() []Pair { return append([]Pair(nil), m.pairs...) }

// Len returns the total number of terms.
func (m *Model) Len() int { return len(m.singles) + len(m.pairs) }

// Qubits returns the sorted set of qubit indices referenced by any term.
// Register positions without terms are not included.
// Complexity: O(T log T).
func (m *Model) Qubits() []int {
	set := make(map[int]struct{}, m.n)
	for _, s := range m.singles {
		set[s.Qubit] = struct{}{}
	}
	for _, p := range m.pairs {
		set[p.A] = struct{}{}
		set[p.B] = struct{}{}
	}

	out := make([]int, 0, len(set))
	for q := range set {
		out = append(out, q)
	}
	sort.Ints(out)

	return out
}

// IsPairOnly reports whether the model has no single-qubit terms with a
// non-zero coefficient. Such models are invariant under a global bit-flip.
func (m *Model) IsPairOnly() bool {
	for _, s := range m.singles {
		if s.Coeff != 0 {
			return false
		}
	}
	return true
}
