package nntree

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// ProjectionSplitter is the ball-tree split: it approximates the principal
// spread of a node with two farthest-point probes and cuts the node at the
// median of the projection onto the line between them.
type ProjectionSplitter struct {
	Metric DistanceMetric
}

func (s ProjectionSplitter) ChooseSplit(ds *Dataset, ids []int, _ *rand.Rand) (*Split, []float64) {
	a, b := pivotPair(s.Metric, ds, ids)
	dir := make([]float64, ds.Dims())
	floats.SubTo(dir, a, b)
	return newProjectionSplit(dir, ds, ids)
}

// pivotPair returns the row farthest from the centroid of ids, then the row
// farthest from that one.
func pivotPair(metric DistanceMetric, ds *Dataset, ids []int) (a, b []float64) {
	c := centroid(ds, ids)
	a = ds.Row(farthest(metric, c, ds, ids))
	b = ds.Row(farthest(metric, a, ds, ids))
	return a, b
}

func newProjectionSplit(dir []float64, ds *Dataset, ids []int) (*Split, []float64) {
	line := projectRows(dir, ds, ids)
	return &Split{
		Kind:      SplitProjection,
		Direction: dir,
		Threshold: median(line),
	}, line
}
