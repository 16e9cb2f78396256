package nntree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatTol = 1e-10

// --- EuclideanMetric tests ---

func TestEuclideanDistance_IdenticalVectors(t *testing.T) {
	a := []float64{1, 2, 3}
	assert.Equal(t, 0.0, EuclideanMetric{}.Distance(a, a))
}

func TestEuclideanDistance_HandComputed(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	// sqrt(9+16+0) = 5
	assert.InDelta(t, 5.0, EuclideanMetric{}.Distance(a, b), floatTol)
}

func TestEuclideanReducedDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	assert.InDelta(t, 25.0, EuclideanMetric{}.ReducedDistance(a, b), floatTol)
}

// --- Other metrics ---

func TestManhattanDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 0, 3}
	assert.InDelta(t, 5.0, ManhattanMetric{}.Distance(a, b), floatTol)
}

func TestChebyshevDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 0, 3}
	assert.InDelta(t, 3.0, ChebyshevMetric{}.Distance(a, b), floatTol)
}

func TestMinkowskiDistance_P2MatchesEuclidean(t *testing.T) {
	a := []float64{0.5, -1, 7}
	b := []float64{2, 3, -1}
	mk := MinkowskiMetric{P: 2}
	assert.InDelta(t, EuclideanMetric{}.Distance(a, b), mk.Distance(a, b), 1e-9)
	assert.InDelta(t, EuclideanMetric{}.ReducedDistance(a, b), mk.ReducedDistance(a, b), 1e-9)
}

func TestCosineDistance(t *testing.T) {
	m := CosineMetric{}
	assert.InDelta(t, 0.0, m.Distance([]float64{1, 2}, []float64{2, 4}), floatTol)
	assert.InDelta(t, 1.0, m.Distance([]float64{1, 0}, []float64{0, 3}), floatTol)
	assert.InDelta(t, 2.0, m.Distance([]float64{1, 1}, []float64{-1, -1}), floatTol)
	assert.Equal(t, m.Distance([]float64{3, 1}, []float64{1, 2}), m.ReducedDistance([]float64{3, 1}, []float64{1, 2}))
	assert.True(t, math.IsNaN(m.Distance([]float64{0, 0}, []float64{1, 1})))
}

func TestDistanceFunc(t *testing.T) {
	f := DistanceFunc(func(a, b []float64) float64 { return math.Abs(a[0] - b[0]) })
	a := []float64{1, 100}
	b := []float64{4, -100}
	assert.Equal(t, 3.0, f.Distance(a, b))
	assert.Equal(t, 3.0, f.ReducedDistance(a, b))
}

func TestCoordinateMetric(t *testing.T) {
	for _, m := range []DistanceMetric{EuclideanMetric{}, ManhattanMetric{}, ChebyshevMetric{}, MinkowskiMetric{P: 3}} {
		assert.True(t, CoordinateMetric(m), "%T", m)
	}
	assert.False(t, CoordinateMetric(CosineMetric{}))
	assert.False(t, CoordinateMetric(DistanceFunc(func(a, b []float64) float64 { return 0 })))
}

// --- Distance oracle ---

func TestDistancesTo(t *testing.T) {
	ds := mustDataset(t, [][]float64{{0, 0}, {3, 4}, {6, 8}})
	got := DistancesTo(EuclideanMetric{}, []float64{0, 0}, ds, []int{2, 0, 1})
	assert.InDeltaSlice(t, []float64{10, 0, 5}, got, floatTol)
}

func TestPairwiseDistances_Shape(t *testing.T) {
	a := mustDataset(t, [][]float64{{0, 0}, {1, 1}})
	b := mustDataset(t, [][]float64{{0, 0}, {3, 4}, {1, 1}})
	dm := PairwiseDistances(EuclideanMetric{}, a, b, 1)

	r, c := dm.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.InDelta(t, 5.0, dm.At(0, 1), floatTol)
	assert.Equal(t, 0.0, dm.At(1, 2))
}

func TestPairwiseDistances_BitwiseIdenticalAcrossWorkers(t *testing.T) {
	ds := mustDataset(t, randomRows(37, 5, 7))
	sequential := PairwiseDistances(EuclideanMetric{}, ds, ds, 1)

	for _, workers := range []int{0, 2, 4, 64} {
		parallel := PairwiseDistances(EuclideanMetric{}, ds, ds, workers)
		require.Equal(t, sequential.RawMatrix().Data, parallel.RawMatrix().Data, "workers=%d", workers)
	}
}
