// SPDX-License-Identifier: MIT
// Package: qaoakit/builder
//
// impl_random.go — random cost operators over an explicit qubit set.
//
// Canonical model:
//   • Singles (default policy): draw c uniformly in [0, n), pick c distinct
//     qubits uniformly, emit them in input order.
//   • Singles (WithSingleDensity(p)): each qubit independently with prob. p.
//   • Pairs: every position pair i<j independently with prob. pairDensity.
//   • Coefficients: cfg.weightFn, U[0,1) unless overridden.
//
// Determinism:
//   • Draw order is fixed: single count, single subset, single coefficients,
//     then pairs in (i, j) lexicographic order, each inclusion draw followed
//     by its coefficient draw.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qaoakit/operator"
)

// Random generates a random model over qubits. The register size is
// max(qubit)+1; fewer than two qubits simply yields no pairs.
//
// Errors: ErrInvalidSize (empty list), ErrNegativeNode, ErrDuplicateNode,
// ErrNeedRandSource.
// Complexity: O(n²) draws for n = len(qubits).
func Random(qubits []int, opts ...BuilderOption) (*operator.Model, error) {
	cfg := newBuilderConfig(append([]BuilderOption{WithWeightFn(UnitUniformWeightFn)}, opts...)...)

	if len(qubits) == 0 {
		return nil, fmt.Errorf("%s: empty qubit list: %w", methodRandom, ErrInvalidSize)
	}
	width, err := validateNodes(methodRandom, qubits)
	if err != nil {
		return nil, err
	}
	if err = requireRand(methodRandom, cfg); err != nil {
		return nil, err
	}
	if err = validateProbability(methodRandom, cfg.pairDensity); err != nil {
		return nil, err
	}

	rng := cfg.rng
	n := len(qubits)

	var singles []operator.Single
	if cfg.singleDensity == singleDensityUniformCount {
		count := rng.IntN(n)
		chosen := rng.Perm(n)[:count]
		sort.Ints(chosen)
		for _, pos := range chosen {
			singles = append(singles, operator.Single{Qubit: qubits[pos], Coeff: complex(cfg.weightFn(rng), 0)})
		}
	} else {
		for _, q := range qubits {
			if rng.Float64() < cfg.singleDensity {
				singles = append(singles, operator.Single{Qubit: q, Coeff: complex(cfg.weightFn(rng), 0)})
			}
		}
	}

	var pairs []operator.Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < cfg.pairDensity {
				pairs = append(pairs, operator.Pair{A: qubits[i], B: qubits[j], Coeff: complex(cfg.weightFn(rng), 0)})
			}
		}
	}

	m, err := operator.New(width, singles, pairs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}

	return m, nil
}
