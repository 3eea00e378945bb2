// SPDX-License-Identifier: MIT
// Package: qaoakit/operator
//
// equal.go — order-insensitive term comparison.

package operator

import (
	"math/cmplx"
	"sort"
)

// Canonical returns copies of the singles sorted by qubit and the pairs with
// normalized endpoints (A < B) sorted by (A, B, real(Coeff)).
// Complexity: O(T log T).
func (m *Model) Canonical() ([]Single, []Pair) {
	singles := m.Singles()
	sort.SliceStable(singles, func(i, j int) bool { return singles[i].Qubit < singles[j].Qubit })

	pairs := m.Pairs()
	for i := range pairs {
		k := pairs[i].Key()
		pairs[i].A, pairs[i].B = k[0], k[1]
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		if pairs[i].B != pairs[j].B {
			return pairs[i].B < pairs[j].B
		}
		return real(pairs[i].Coeff) < real(pairs[j].Coeff)
	})

	return singles, pairs
}

// EqualTerms reports whether a and b hold the same multiset of
// (index-set, coefficient) terms, with coefficients compared within tol.
// Term order and register size are not compared.
func EqualTerms(a, b *Model, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	as, ap := a.Canonical()
	bs, bp := b.Canonical()
	if len(as) != len(bs) || len(ap) != len(bp) {
		return false
	}
	for i := range as {
		if as[i].Qubit != bs[i].Qubit || cmplx.Abs(as[i].Coeff-bs[i].Coeff) > tol {
			return false
		}
	}
	for i := range ap {
		if ap[i].A != bp[i].A || ap[i].B != bp[i].B || cmplx.Abs(ap[i].Coeff-bp[i].Coeff) > tol {
			return false
		}
	}
	return true
}
