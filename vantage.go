package nntree

import "math/rand/v2"

// VantagePointSplitter picks, from a random pool of the node's samples, the
// one whose distances to the rest of the node are most spread out, and cuts
// the node at the median distance to it. It needs only the metric, so it
// works for any DistanceMetric.
type VantagePointSplitter struct {
	Metric        DistanceMetric
	CandidatePool int

	// Workers bounds the goroutines scoring candidates of nodes with at
	// least parallelBuildCutoff samples. Values below 2 score sequentially.
	Workers int
}

func (s VantagePointSplitter) ChooseSplit(ds *Dataset, ids []int, rng *rand.Rand) (*Split, []float64) {
	vp := s.selectVantagePoint(ds, ids, rng)
	center := ds.Row(vp)
	dists := DistancesTo(s.Metric, center, ds, ids)
	return &Split{
		Kind:         SplitVantagePoint,
		VantagePoint: vp,
		Threshold:    median(dists),
		center:       center,
		metric:       s.Metric,
	}, dists
}

// selectVantagePoint scores every candidate by spreadAboutMedian of its
// distances to the node. The first candidate with the largest strictly
// positive score wins; if none scores above zero the first candidate is
// used.
func (s VantagePointSplitter) selectVantagePoint(ds *Dataset, ids []int, rng *rand.Rand) int {
	pool := samplePool(ids, min(len(ids), s.CandidatePool), rng)

	workers := 1
	if len(ids) >= parallelBuildCutoff {
		workers = s.Workers
	}
	dm := PairwiseDistances(s.Metric, ds.subset(pool), ds.subset(ids), workers)

	best, bestSpread := pool[0], 0.0
	for i, id := range pool {
		if spread := spreadAboutMedian(dm.RawRowView(i)); spread > bestSpread {
			best, bestSpread = id, spread
		}
	}
	return best
}

// samplePool draws n of ids uniformly without replacement, in draw order.
func samplePool(ids []int, n int, rng *rand.Rand) []int {
	perm := rng.Perm(len(ids))[:n]
	pool := make([]int, n)
	for i, p := range perm {
		pool[i] = ids[p]
	}
	return pool
}
