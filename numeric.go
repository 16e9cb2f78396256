package nntree

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// median returns the middle value of xs, averaging the two middle values
// when len(xs) is even. xs is not modified.
func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// spreadAboutMedian is the mean squared deviation of xs from its median.
func spreadAboutMedian(xs []float64) float64 {
	return stat.MomentAbout(2, xs, median(xs), nil)
}

// centroid returns the mean of the rows of ds selected by ids.
func centroid(ds *Dataset, ids []int) []float64 {
	c := make([]float64, ds.Dims())
	for _, id := range ids {
		floats.Add(c, ds.Row(id))
	}
	floats.Scale(1/float64(len(ids)), c)
	return c
}

// farthest returns the id in ids whose row is farthest from point. The
// first maximal id wins.
func farthest(metric DistanceMetric, point []float64, ds *Dataset, ids []int) int {
	return ids[floats.MaxIdx(DistancesTo(metric, point, ds, ids))]
}

// projectRows returns the dot product of direction with each selected row.
func projectRows(direction []float64, ds *Dataset, ids []int) []float64 {
	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = floats.Dot(direction, ds.Row(id))
	}
	return out
}
