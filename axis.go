package nntree

import (
	"math"
	"math/rand/v2"
)

// AxisSplitter is the KD-tree split: it cuts the node at the median of the
// coordinate with the greatest spread.
type AxisSplitter struct{}

func (AxisSplitter) ChooseSplit(ds *Dataset, ids []int, _ *rand.Rand) (*Split, []float64) {
	axis := spreadAxis(ds, ids)
	vals := make([]float64, len(ids))
	for i, id := range ids {
		vals[i] = ds.Row(id)[axis]
	}
	return &Split{
		Kind:      SplitAxis,
		Axis:      axis,
		Threshold: median(vals),
	}, vals
}

// spreadAxis returns the dimension with the greatest max-min spread among
// the selected rows. The first such dimension wins.
func spreadAxis(ds *Dataset, ids []int) int {
	bestDim := 0
	bestSpread := -1.0
	for d := range ds.Dims() {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, id := range ids {
			v := ds.Row(id)[d]
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if spread := hi - lo; spread > bestSpread {
			bestSpread = spread
			bestDim = d
		}
	}
	return bestDim
}
