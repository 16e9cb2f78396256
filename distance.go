package nntree

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMetric provides distance computation between two equal-width
// vectors. ReducedDistance is any monotone transform of Distance that is
// cheaper to compute (e.g., squared Euclidean skips sqrt).
type DistanceMetric interface {
	Distance(a, b []float64) float64
	ReducedDistance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
// ReducedDistance delegates to the same function.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64        { return f(a, b) }
func (f DistanceFunc) ReducedDistance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
// ReducedDistance returns squared Euclidean distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

func (EuclideanMetric) ReducedDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 1) }

func (m ManhattanMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For a zero vector the result is NaN (0/0). It is not a coordinate metric,
// so only the vantage-point strategy accepts it.
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	return 1 - floats.Dot(a, b)/math.Sqrt(floats.Dot(a, a)*floats.Dot(b, b))
}

func (m CosineMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

func (m ChebyshevMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1; validateConfig rejects smaller values.
// ReducedDistance returns sum(|a[i]-b[i]|^P) without the final root.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, m.P)
}

func (m MinkowskiMetric) ReducedDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.P)
	}
	return sum
}

// CoordinateMetric reports whether m is one of the built-in Lp metrics.
// Projection, k-means and axis splits reason about coordinates and are only
// accepted with these; the vantage-point strategy works with any metric.
func CoordinateMetric(m DistanceMetric) bool {
	switch m.(type) {
	case EuclideanMetric, ManhattanMetric, ChebyshevMetric, MinkowskiMetric:
		return true
	default:
		return false
	}
}

// DistancesTo returns the distance from point to each row of ds selected by
// ids, in ids order.
func DistancesTo(metric DistanceMetric, point []float64, ds *Dataset, ids []int) []float64 {
	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = metric.Distance(point, ds.Row(id))
	}
	return out
}

// PairwiseDistances computes the m×n matrix of distances between every row
// of a and every row of b. Rows of the result are split across up to
// workers goroutines; the result is bitwise identical for any worker count.
func PairwiseDistances(metric DistanceMetric, a, b *Dataset, workers int) *mat.Dense {
	m, n := a.Len(), b.Len()
	out := mat.NewDense(m, n, nil)
	if workers < 1 {
		workers = 1
	}

	fill := func(start, end int) {
		for i := start; i < end; i++ {
			row := out.RawRowView(i)
			ai := a.Row(i)
			for j := range n {
				row[j] = metric.Distance(ai, b.Row(j))
			}
		}
	}
	if workers == 1 || m <= 1 {
		fill(0, m)
		return out
	}

	// Each worker owns a contiguous range of output rows.
	var wg sync.WaitGroup
	rowsPerWorker := (m + workers - 1) / workers
	for start := 0; start < m; start += rowsPerWorker {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fill(start, end)
		}(start, min(start+rowsPerWorker, m))
	}
	wg.Wait()
	return out
}
