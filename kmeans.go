package nntree

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// KMeansSplitter clusters a node into two groups with Lloyd's algorithm and
// projects onto the difference of the two centroids. Initial centroids are
// the pivot pair of ProjectionSplitter; Iterations rounds always run.
type KMeansSplitter struct {
	Metric     DistanceMetric
	Iterations int
}

func (s KMeansSplitter) ChooseSplit(ds *Dataset, ids []int, _ *rand.Rand) (*Split, []float64) {
	a, b := pivotPair(s.Metric, ds, ids)
	c0 := append([]float64(nil), a...)
	c1 := append([]float64(nil), b...)
	lloyd(ds, ids, c0, c1, s.Iterations)

	dir := make([]float64, ds.Dims())
	floats.SubTo(dir, c0, c1)
	return newProjectionSplit(dir, ds, ids)
}

// lloyd refines c0 and c1 in place. Points are assigned by squared
// Euclidean distance with ties going to c0. A centroid whose cluster comes
// up empty keeps its previous value.
func lloyd(ds *Dataset, ids []int, c0, c1 []float64, iterations int) {
	var sq EuclideanMetric
	dims := ds.Dims()
	sum0 := make([]float64, dims)
	sum1 := make([]float64, dims)

	for range iterations {
		for i := range sum0 {
			sum0[i], sum1[i] = 0, 0
		}
		var n0, n1 int
		for _, id := range ids {
			row := ds.Row(id)
			if sq.ReducedDistance(row, c0) <= sq.ReducedDistance(row, c1) {
				floats.Add(sum0, row)
				n0++
			} else {
				floats.Add(sum1, row)
				n1++
			}
		}
		if n0 > 0 {
			floats.ScaleTo(c0, 1/float64(n0), sum0)
		}
		if n1 > 0 {
			floats.ScaleTo(c1, 1/float64(n1), sum1)
		}
	}
}
