// SPDX-License-Identifier: MIT
// Package: qaoakit/analysis
//
// evaluator.go — the cost-evaluator boundary and an exact reference
// implementation.
//
// A real evaluator (a variational circuit run on a simulator or device) lives
// outside this module. ExactEvaluator stands in for it: it samples the
// thermal distribution of the operator's diagonal spectrum, which
// concentrates on the optimum as Beta grows.

package analysis

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/qaoakit/operator"
)

const (
	methodBoltzmann    = "Boltzmann"
	methodDistribution = "Distribution"
)

// Evaluator produces a measurement distribution for a cost operator.
type Evaluator interface {
	Distribution(ctx context.Context, m *operator.Model) (Distribution, error)
}

// Boltzmann returns p_i ∝ exp(-beta·E_i) over a spectrum of length 2^n.
// beta = 0 gives the uniform distribution; beta = +Inf, or a finite beta
// large enough that beta·E overflows, spreads the mass uniformly over the
// states within TieTolerance of the minimum energy.
//
// Errors: ErrInvalidDistribution (length not 2^n, non-finite energy),
// ErrInvalidTemperature (beta < 0 or NaN).
// Complexity: O(2^n).
func Boltzmann(energies []float64, beta float64) (Distribution, error) {
	if _, ok := qubitsFor(len(energies)); !ok {
		return nil, fmt.Errorf("%s: %d energies: %w", methodBoltzmann, len(energies), ErrInvalidDistribution)
	}
	for i, e := range energies {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("%s: E[%d]=%v: %w", methodBoltzmann, i, e, ErrInvalidDistribution)
		}
	}
	if math.IsNaN(beta) || beta < 0 {
		return nil, fmt.Errorf("%s: beta=%v: %w", methodBoltzmann, beta, ErrInvalidTemperature)
	}

	out := make(Distribution, len(energies))
	if math.IsInf(beta, 1) {
		return groundStates(energies, out), nil
	}

	for i, e := range energies {
		out[i] = -beta * e
	}
	lse := floats.LogSumExp(out)
	if math.IsInf(lse, 0) || math.IsNaN(lse) {
		// beta·E overflowed; the distribution is the zero-temperature limit.
		return groundStates(energies, out), nil
	}
	for i := range out {
		out[i] = math.Exp(out[i] - lse)
	}
	return out, nil
}

// groundStates overwrites out with the uniform distribution over the states
// within TieTolerance of the minimum energy.
func groundStates(energies []float64, out Distribution) Distribution {
	lo := floats.Min(energies)
	count := 0
	for i, e := range energies {
		out[i] = 0
		if e-lo <= TieTolerance {
			out[i] = 1
			count++
		}
	}
	floats.Scale(1/float64(count), out)
	return out
}

// ExactEvaluator computes the thermal distribution of a model's diagonal
// spectrum at inverse temperature Beta.
type ExactEvaluator struct {
	Beta float64
}

// Distribution implements Evaluator. The spectrum is limited to
// operator.MaxSpectrumQubits qubits.
func (e ExactEvaluator) Distribution(ctx context.Context, m *operator.Model) (Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribution, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodDistribution, ErrNilModel)
	}
	energies, err := m.Spectrum()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribution, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribution, err)
	}

	d, err := Boltzmann(energies, e.Beta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribution, err)
	}
	return d, nil
}
