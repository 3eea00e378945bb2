package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qaoakit/dataset"
)

func TestParseMetric(t *testing.T) {
	cases := map[string]dataset.Metric{
		"":            dataset.Euclidean,
		"euclidean":   dataset.Euclidean,
		" Euclidean ": dataset.Euclidean,
		"sqeuclidean": dataset.SqEuclidean,
		"cityblock":   dataset.Manhattan,
		"manhattan":   dataset.Manhattan,
		"chebyshev":   dataset.Chebyshev,
		"COSINE":      dataset.Cosine,
	}
	for name, want := range cases {
		got, err := dataset.ParseMetric(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := dataset.ParseMetric("mahalanobis")
	assert.ErrorIs(t, err, dataset.ErrUnsupportedMetric)
}

func TestMetric_String(t *testing.T) {
	for _, m := range []dataset.Metric{dataset.Euclidean, dataset.SqEuclidean, dataset.Manhattan, dataset.Chebyshev, dataset.Cosine} {
		back, err := dataset.ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
	assert.Equal(t, "Metric(42)", dataset.Metric(42).String())
}

func TestMetric_Distance(t *testing.T) {
	a, b := []float64{0, 0}, []float64{3, 4}
	tests := []struct {
		metric dataset.Metric
		want   float64
	}{
		{dataset.Euclidean, 5},
		{dataset.SqEuclidean, 25},
		{dataset.Manhattan, 7},
		{dataset.Chebyshev, 4},
	}
	for _, tc := range tests {
		t.Run(tc.metric.String(), func(t *testing.T) {
			got, err := tc.metric.Distance(a, b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}

	got, err := dataset.Cosine.Distance([]float64{1, 0}, []float64{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-12)
	got, err = dataset.Cosine.Distance([]float64{1, 1}, []float64{2, 2})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.InDelta(t, 0, got, 1e-12)

	_, err = dataset.Cosine.Distance([]float64{0, 0}, b)
	assert.ErrorIs(t, err, dataset.ErrZeroVector)
	_, err = dataset.Euclidean.Distance(a, []float64{1})
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)
	_, err = dataset.Metric(99).Distance(a, b)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedMetric)
}
