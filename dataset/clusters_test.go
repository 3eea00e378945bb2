package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qaoakit/dataset"
)

var (
	twoMeans = [][]float64{{0, 0}, {10, 10}}
	twoCovs  = [][][]float64{
		{{1, 0}, {0, 1}},
		{{0.5, 0.1}, {0.1, 0.5}},
	}
)

func TestGaussianClusters(t *testing.T) {
	ds, err := dataset.GaussianClusters(2, []int{3, 2}, twoMeans, twoCovs, dataset.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, 2, ds.Dim)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, ds.Labels)
	for _, p := range ds.Points {
		assert.Len(t, p, 2)
	}

	again, err := dataset.GaussianClusters(2, []int{3, 2}, twoMeans, twoCovs, dataset.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, ds.Points, again.Points, "same seed, same draws")

	bits, err := ds.BinaryLabels()
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 1, 1}, bits)
}

func TestGaussianClusters_SampleMean(t *testing.T) {
	const n = 4000
	ds, err := dataset.GaussianClusters(1, []int{n}, [][]float64{{5, -3}}, [][][]float64{{{1, 0}, {0, 1}}}, dataset.WithSeed(11))
	require.NoError(t, err)

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range ds.Points {
		xs[i], ys[i] = p[0], p[1]
	}
	assert.InDelta(t, 5, stat.Mean(xs, nil), 0.1)
	assert.InDelta(t, -3, stat.Mean(ys, nil), 0.1)
	assert.InDelta(t, 1, stat.Variance(xs, nil), 0.15)
	assert.True(t, floats.Min(xs) < 5 && floats.Max(xs) > 5)
}

func TestGaussianClusters_Errors(t *testing.T) {
	seed := dataset.WithSeed(1)

	_, err := dataset.GaussianClusters(0, nil, nil, nil, seed)
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.GaussianClusters(3, []int{1, 1}, twoMeans, twoCovs, seed)
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)

	_, err = dataset.GaussianClusters(2, []int{1, -1}, twoMeans, twoCovs, seed)
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)

	_, err = dataset.GaussianClusters(2, []int{1, 1}, [][]float64{{0, 0}, {1}}, twoCovs, seed)
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)

	_, err = dataset.GaussianClusters(1, []int{1}, [][]float64{{0, 0}}, [][][]float64{{{1, 0}}}, seed)
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)

	_, err = dataset.GaussianClusters(1, []int{1}, [][]float64{{0, 0}}, [][][]float64{{{1, 0.5}, {0, 1}}}, seed)
	assert.ErrorIs(t, err, dataset.ErrNotPositiveDefinite)

	_, err = dataset.GaussianClusters(1, []int{1}, [][]float64{{0, 0}}, [][][]float64{{{1, 2}, {2, 1}}}, seed)
	assert.ErrorIs(t, err, dataset.ErrNotPositiveDefinite)

	_, err = dataset.GaussianClusters(2, []int{1, 1}, twoMeans, twoCovs)
	assert.ErrorIs(t, err, dataset.ErrNeedRandSource)
}

func TestBinaryLabels_MoreThanTwoClusters(t *testing.T) {
	ds := &dataset.Dataset{Points: [][]float64{{0}, {1}, {2}}, Labels: []int{0, 1, 2}, Dim: 1}
	_, err := ds.BinaryLabels()
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dataset.WithRand(nil) })
}
