// SPDX-License-Identifier: MIT
// Package: qaoakit/operator
//
// yaml.go — YAML fixture form of a Model (gopkg.in/yaml.v3).
//
//	qubits: 3
//	singles:
//	  - {qubit: 1, coeff: 0.3}
//	pairs:
//	  - {a: 0, b: 1, coeff: 0.4}
//	  - {a: 1, b: 2, coeff: 0.6}
//
// Only real coefficients are representable.

package operator

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	methodMarshalYAML   = "MarshalYAML"
	methodUnmarshalYAML = "UnmarshalYAML"
)

type yamlSingle struct {
	Qubit int     `yaml:"qubit"`
	Coeff float64 `yaml:"coeff"`
}

type yamlPair struct {
	A     int     `yaml:"a"`
	B     int     `yaml:"b"`
	Coeff float64 `yaml:"coeff"`
}

type yamlModel struct {
	Qubits  int          `yaml:"qubits"`
	Singles []yamlSingle `yaml:"singles,omitempty"`
	Pairs   []yamlPair   `yaml:"pairs,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (m *Model) MarshalYAML() (interface{}, error) {
	out := yamlModel{Qubits: m.n}
	for _, s := range m.singles {
		if imag(s.Coeff) != 0 {
			return nil, fmt.Errorf("%s: single on qubit %d: %w", methodMarshalYAML, s.Qubit, ErrComplexCoefficient)
		}
		out.Singles = append(out.Singles, yamlSingle{Qubit: s.Qubit, Coeff: real(s.Coeff)})
	}
	for _, p := range m.pairs {
		if imag(p.Coeff) != 0 {
			return nil, fmt.Errorf("%s: pair (%d,%d): %w", methodMarshalYAML, p.A, p.B, ErrComplexCoefficient)
		}
		out.Pairs = append(out.Pairs, yamlPair{A: p.A, B: p.B, Coeff: real(p.Coeff)})
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The decoded terms go through the
// same validation as New.
func (m *Model) UnmarshalYAML(value *yaml.Node) error {
	var in yamlModel
	if err := value.Decode(&in); err != nil {
		return fmt.Errorf("%s: %w", methodUnmarshalYAML, err)
	}

	singles := make([]Single, len(in.Singles))
	for i, s := range in.Singles {
		singles[i] = Single{Qubit: s.Qubit, Coeff: complex(s.Coeff, 0)}
	}
	pairs := make([]Pair, len(in.Pairs))
	for i, p := range in.Pairs {
		pairs[i] = Pair{A: p.A, B: p.B, Coeff: complex(p.Coeff, 0)}
	}

	if err := validate(methodUnmarshalYAML, in.Qubits, singles, pairs); err != nil {
		return err
	}
	*m = Model{n: in.Qubits, singles: singles, pairs: pairs}
	return nil
}
