// SPDX-License-Identifier: MIT
package operator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qaoakit/operator"
)

func TestMarshalText_Golden(t *testing.T) {
	m, err := operator.FromHyperparameters(3,
		[]int{1}, []float64{0.3},
		[][2]int{{0, 1}, {1, 2}}, []float64{0.4, 0.6})
	require.NoError(t, err)

	const want = "# qubits=3\n0.3, 1\n0.4, 0 1\n0.6, 1 2\n"
	got, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
	assert.Equal(t, want, m.String())
}

func TestParseText_RoundTrip(t *testing.T) {
	m, err := operator.New(5,
		[]operator.Single{{Qubit: 4, Coeff: -1.25}, {Qubit: 0, Coeff: complex(0.5, 1)}},
		[]operator.Pair{{A: 3, B: 1, Coeff: 1e-9}, {A: 0, B: 1, Coeff: 0}})
	require.NoError(t, err)

	back, err := operator.ParseText(m.String())
	require.NoError(t, err)
	assert.Equal(t, m.QubitCount(), back.QubitCount())
	assert.Equal(t, m.Singles(), back.Singles())
	assert.Equal(t, m.Pairs(), back.Pairs())

	var viaIface operator.Model
	require.NoError(t, viaIface.UnmarshalText([]byte(m.String())))
	assert.Equal(t, m.Pairs(), viaIface.Pairs())
}

func TestParseText_InferredSizeAndComments(t *testing.T) {
	m, err := operator.ParseText("# generated\n\n1, 0 2\n  0.5 , 1\n")
	require.NoError(t, err)
	assert.Equal(t, 3, m.QubitCount())
	assert.Equal(t, []operator.Single{{Qubit: 1, Coeff: 0.5}}, m.Singles())
}

func TestParseText_Errors(t *testing.T) {
	tests := map[string]struct {
		in   string
		want error
	}{
		"no comma":       {"0.5 1\n", operator.ErrSyntax},
		"bad coeff":      {"x, 1\n", operator.ErrSyntax},
		"bad index":      {"1, a\n", operator.ErrSyntax},
		"three indices":  {"1, 0 1 2\n", operator.ErrSyntax},
		"bad header":     {"# qubits=two\n", operator.ErrSyntax},
		"out of range":   {"# qubits=2\n1, 0 2\n", operator.ErrIndexOutOfRange},
		"self coupling":  {"1, 1 1\n", operator.ErrSelfCoupling},
		"empty document": {"", operator.ErrInvalidSize},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := operator.ParseText(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	m, err := operator.FromHyperparameters(3,
		[]int{1}, []float64{0.3},
		[][2]int{{0, 1}, {1, 2}}, []float64{0.4, 0.6})
	require.NoError(t, err)

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), "qubits: 3")

	var back operator.Model
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, operator.EqualTerms(m, &back, 0))
	assert.Equal(t, 3, back.QubitCount())
}

func TestYAML_Errors(t *testing.T) {
	m, err := operator.New(2, nil, []operator.Pair{{A: 0, B: 1, Coeff: complex(0, 1)}})
	require.NoError(t, err)
	_, err = yaml.Marshal(m)
	assert.ErrorIs(t, err, operator.ErrComplexCoefficient)

	var back operator.Model
	err = yaml.Unmarshal([]byte("qubits: 2\npairs:\n  - {a: 0, b: 2, coeff: 1}\n"), &back)
	assert.ErrorIs(t, err, operator.ErrIndexOutOfRange)
}
