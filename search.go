package nntree

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Query returns up to k approximate nearest neighbors of point, as dataset
// row ids and their distances, ordered by ascending distance.
//
// The search follows a single root-to-region path and never backtracks, so
// true neighbors just across a split boundary can be missed. When
// k > t.Len() every point is returned.
func (t *Tree) Query(point []float64, k int) ([]int, []float64, error) {
	region, err := t.Search(point, k)
	if err != nil {
		return nil, nil, err
	}
	ids, dists := t.rank(point, region.SampleIDs, k)
	return ids, dists, nil
}

// Search returns the region Query would rank for point and k.
//
// Descent stops above any child holding fewer than k samples, so the
// returned node holds at least k samples whenever k <= t.Len().
func (t *Tree) Search(point []float64, k int) (*Node, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if len(point) != t.data.Dims() {
		return nil, dimensionError(len(point), t.data.Dims())
	}

	node := t.root
	for !node.IsLeaf() {
		next := node.Right
		if node.Split.GoesLeft(node.Split.Route(point)) {
			next = node.Left
		}
		if next.Size < k {
			break
		}
		node = next
	}
	return node, nil
}

// rank sorts ids by distance to point and keeps the first k. Equal
// distances keep their order in ids.
func (t *Tree) rank(point []float64, ids []int, k int) ([]int, []float64) {
	dists := DistancesTo(t.cfg.Metric, point, t.data, ids)
	order := make([]int, len(ids))
	floats.ArgsortStable(dists, order)

	n := min(k, len(order))
	outIDs := make([]int, n)
	for i := range n {
		outIDs[i] = ids[order[i]]
	}
	return outIDs, dists[:n:n]
}

// QueryBatch runs Query for every point, spreading the work over up to
// Config.Workers goroutines. Results are in input order. The first error
// encountered is returned.
func (t *Tree) QueryBatch(points [][]float64, k int) ([][]int, [][]float64, error) {
	indices := make([][]int, len(points))
	distances := make([][]float64, len(points))

	var g errgroup.Group
	g.SetLimit(max(t.cfg.Workers, 1))
	for i, p := range points {
		g.Go(func() error {
			ids, dists, err := t.Query(p, k)
			if err != nil {
				return errors.Wrapf(err, "point %d", i)
			}
			indices[i], distances[i] = ids, dists
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return indices, distances, nil
}
