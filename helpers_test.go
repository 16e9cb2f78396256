package nntree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

var allStrategies = []Strategy{
	StrategyProjection,
	StrategyKMeans,
	StrategyVantagePoint,
	StrategyAxis,
}

func mustDataset(t testing.TB, rows [][]float64) *Dataset {
	t.Helper()
	ds, err := NewDataset(rows)
	require.NoError(t, err)
	return ds
}

func mustTree(t testing.TB, rows [][]float64, cfg Config) *Tree {
	t.Helper()
	tree, err := New(rows, cfg)
	require.NoError(t, err)
	return tree
}

func testConfig(strategy Strategy, leafSize int) Config {
	cfg := DefaultConfig()
	cfg.Strategy = strategy
	cfg.LeafSize = leafSize
	cfg.Seed = 42
	return cfg
}

// randomRows returns n uniformly random points in [0, 100)^dims.
func randomRows(n, dims int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, dims)
		for j := range rows[i] {
			rows[i][j] = rng.Float64() * 100
		}
	}
	return rows
}

// twoClusters returns 8 points, the first 4 within 0.1 of (0,0) and the
// last 4 within 0.1 of (10,10). The cluster at the origin is stretched
// along x so that rows 0 and 1 are the two nearest to the origin.
func twoClusters() [][]float64 {
	return [][]float64{
		{0.01, 0.005}, {0.03, -0.005}, {0.08, 0.01}, {0.1, -0.01},
		{10.02, 9.95}, {9.94, 10.07}, {10.08, 10.01}, {9.97, 9.92},
	}
}

// bruteForceKNN ranks every row by distance to query.
func bruteForceKNN(rows [][]float64, query []float64, k int, metric DistanceMetric) ([]int, []float64) {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return metric.Distance(query, rows[idx[a]]) < metric.Distance(query, rows[idx[b]])
	})
	if k > len(idx) {
		k = len(idx)
	}
	idx = idx[:k]
	dist := make([]float64, k)
	for i, id := range idx {
		dist[i] = metric.Distance(query, rows[id])
	}
	return idx, dist
}

// requireTreeInvariants checks the structural invariants of every node:
// sizes add up, children partition their parent with no loss or
// duplication, and leaves are exactly the nodes at or below the leaf size
// (forced leaves excepted when allowForced is set).
func requireTreeInvariants(t *testing.T, tree *Tree, leafSize int, allowForced bool) {
	t.Helper()

	root := tree.Root()
	require.Equal(t, tree.Dataset().Len(), root.Size)
	seenAtRoot := make(map[int]bool, root.Size)
	for _, id := range root.SampleIDs {
		require.False(t, seenAtRoot[id], "duplicate id %d at root", id)
		seenAtRoot[id] = true
	}

	tree.Walk(func(n *Node, depth int) bool {
		require.Equal(t, len(n.SampleIDs), n.Size, "depth %d: cached size", depth)
		if n.IsLeaf() {
			require.Nil(t, n.Left, "depth %d: leaf with left child", depth)
			require.Nil(t, n.Right, "depth %d: leaf with right child", depth)
			if !allowForced {
				require.LessOrEqual(t, n.Size, leafSize, "depth %d: leaf too large", depth)
			}
			return true
		}

		require.NotNil(t, n.Left)
		require.NotNil(t, n.Right)
		require.Greater(t, n.Size, leafSize, "depth %d: internal node at or below leaf size", depth)
		require.Equal(t, n.Size, n.Left.Size+n.Right.Size, "depth %d: size invariant", depth)
		require.GreaterOrEqual(t, n.Left.Size, 1)
		require.GreaterOrEqual(t, n.Right.Size, 1)

		union := append(append([]int(nil), n.Left.SampleIDs...), n.Right.SampleIDs...)
		require.ElementsMatch(t, n.SampleIDs, union, "depth %d: partition coverage", depth)
		return true
	})
}
