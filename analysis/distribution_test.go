package analysis_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qaoakit/analysis"
)

func peaked(n, at int) analysis.Distribution {
	d := make(analysis.Distribution, 1<<n)
	rest := 0.2 / float64(len(d)-1)
	for i := range d {
		d[i] = rest
	}
	d[at] = 0.8
	return d
}

func TestMaxProbabilityPattern(t *testing.T) {
	p, idx, err := analysis.MaxProbabilityPattern(peaked(4, 14))
	require.NoError(t, err)
	assert.Equal(t, 14, idx)
	assert.Equal(t, analysis.Pattern{1, 1, 1, 0}, p)
}

func TestMaxProbabilityPattern_LiteralVector(t *testing.T) {
	d := analysis.Distribution{0, 0.2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.8, 0}
	p, idx, err := analysis.MaxProbabilityPattern(d)
	require.NoError(t, err)
	assert.Equal(t, 14, idx)
	assert.Equal(t, analysis.Pattern{1, 1, 1, 0}, p)
	assert.Equal(t, "1110", p.String())

	best, comp, err := analysis.DegeneratePair(d)
	require.NoError(t, err)
	assert.Equal(t, 0.8, best.Probability)
	assert.Equal(t, analysis.Pattern{0, 0, 0, 1}, comp.Pattern)
	assert.Equal(t, 1, comp.Index)
	assert.Equal(t, 0.2, comp.Probability)
}

func TestMaxProbabilityPattern_Ties(t *testing.T) {
	d := analysis.Distribution{0.1, 0.4, 0.1, 0.4}
	p, idx, err := analysis.MaxProbabilityPattern(d)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, analysis.Pattern{0, 1}, p)

	// Differences under the tie tolerance still go to the lowest index.
	d = analysis.Distribution{0.25, 0.25 + 1e-14, 0.25, 0.25 - 1e-14}
	_, idx, err = analysis.MaxProbabilityPattern(d)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestMaxProbabilityPattern_Invalid(t *testing.T) {
	for name, d := range map[string]analysis.Distribution{
		"empty":    nil,
		"one":      {1},
		"three":    {0.2, 0.3, 0.5},
		"negative": {0.5, 0.6, -0.1, 0},
		"nan":      {math.NaN(), 0, 0, 1},
	} {
		_, _, err := analysis.MaxProbabilityPattern(d)
		assert.ErrorIs(t, err, analysis.ErrInvalidDistribution, name)
	}
}

func TestDistributionValidate(t *testing.T) {
	assert.NoError(t, analysis.Distribution{0.25, 0.25, 0.25, 0.25}.Validate(0))
	assert.ErrorIs(t, analysis.Distribution{0.5, 0.5, 0.5, 0.5}.Validate(0), analysis.ErrInvalidDistribution)
	assert.NoError(t, analysis.Distribution{0.5, 0.5, 0.01, 0}.Validate(0.1))
	assert.Equal(t, 3, peaked(3, 0).Qubits())
	assert.Zero(t, analysis.Distribution{1, 0, 0}.Qubits())
}

func TestMostLikely(t *testing.T) {
	d := analysis.Distribution{0.1, 0.4, 0.2, 0.3}
	out, err := analysis.MostLikely(d, 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []int{1, 3, 2}, []int{out[0].Index, out[1].Index, out[2].Index})
	assert.Equal(t, analysis.Pattern{1, 1}, out[1].Pattern)
	assert.Equal(t, 0.3, out[1].Probability)
	assert.Equal(t, analysis.Distribution{0.1, 0.4, 0.2, 0.3}, d, "input is left untouched")

	all, err := analysis.MostLikely(d, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := analysis.MostLikely(d, 0)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestDegeneratePair(t *testing.T) {
	d := analysis.Distribution{0.05, 0.4, 0.4, 0.15}
	best, comp, err := analysis.DegeneratePair(d)
	require.NoError(t, err)
	assert.Equal(t, 1, best.Index)
	assert.Equal(t, 2, comp.Index)
	assert.Equal(t, analysis.Pattern{1, 0}, comp.Pattern)
	assert.Equal(t, best.Probability, comp.Probability)
}

func TestReadWriteDistribution(t *testing.T) {
	in := "# probabilities\n0.125\n0.375\n\n0.25\n0.25\n"
	d, err := analysis.ReadDistribution(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, analysis.Distribution{0.125, 0.375, 0.25, 0.25}, d)

	var sb strings.Builder
	require.NoError(t, analysis.WriteDistribution(&sb, d))
	assert.Equal(t, "0.125\n0.375\n0.25\n0.25\n", sb.String())

	_, err = analysis.ReadDistribution(strings.NewReader("0.5\nabc\n"))
	assert.ErrorIs(t, err, analysis.ErrInvalidDistribution)
	_, err = analysis.ReadDistribution(strings.NewReader("0.5\n0.25\n0.25\n"))
	assert.ErrorIs(t, err, analysis.ErrInvalidDistribution)
}
