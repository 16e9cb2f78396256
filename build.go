package nntree

import (
	"log/slog"
	"math/rand/v2"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// parallelBuildCutoff is the smallest subtree handed to another goroutine.
const parallelBuildCutoff = 512

// builder recursively splits sample ids into a tree of Nodes.
//
// Every node draws randomness from its own PCG stream keyed by (seed, path),
// where path identifies the node's position below the root. The tree is
// therefore the same whether subtrees are built sequentially or not.
type builder struct {
	ds       *Dataset
	splitter Splitter
	leafSize int
	seed     uint64
	logger   *slog.Logger

	group  *errgroup.Group // nil when building sequentially
	forced atomic.Int64
}

func newBuilder(ds *Dataset, splitter Splitter, cfg Config, seed uint64) *builder {
	b := &builder{
		ds:       ds,
		splitter: splitter,
		leafSize: cfg.LeafSize,
		seed:     seed,
		logger:   cfg.Logger,
	}
	if cfg.Workers > 1 {
		b.group = new(errgroup.Group)
		b.group.SetLimit(cfg.Workers - 1)
	}
	return b
}

// run builds the tree over every row of the dataset.
func (b *builder) run() *Node {
	ids := make([]int, b.ds.Len())
	for i := range ids {
		ids[i] = i
	}
	root := b.build(ids, rootPath, 0)
	if b.group != nil {
		_ = b.group.Wait()
	}
	return root
}

func (b *builder) build(ids []int, path uint64, depth int) *Node {
	node := &Node{SampleIDs: ids, Size: len(ids)}
	if node.Size <= b.leafSize {
		return node
	}

	rng := rand.New(rand.NewPCG(b.seed, path))
	split, routing := b.splitter.ChooseSplit(b.ds, ids, rng)
	left, right := partition(ids, routing, split)
	if len(left) == 0 || len(right) == 0 {
		split.Inclusive = true
		left, right = partition(ids, routing, split)
	}
	if len(left) == 0 || len(right) == 0 {
		b.forced.Add(1)
		b.logger.Debug("forced leaf",
			"size", node.Size,
			"depth", depth,
			"kind", split.Kind.String(),
		)
		return node
	}

	node.Split = split
	leftPath, rightPath := childPath(path, 0), childPath(path, 1)
	if b.group != nil && len(left) >= parallelBuildCutoff &&
		b.group.TryGo(func() error {
			node.Left = b.build(left, leftPath, depth+1)
			return nil
		}) {
		node.Right = b.build(right, rightPath, depth+1)
		return node
	}
	node.Left = b.build(left, leftPath, depth+1)
	node.Right = b.build(right, rightPath, depth+1)
	return node
}

// partition splits ids by split.GoesLeft on their routing values, keeping
// the relative order of ids on each side.
func partition(ids []int, routing []float64, split *Split) (left, right []int) {
	left = make([]int, 0, len(ids)/2+1)
	right = make([]int, 0, len(ids)/2+1)
	for i, id := range ids {
		if split.GoesLeft(routing[i]) {
			left = append(left, id)
		} else {
			right = append(right, id)
		}
	}
	return left, right
}

const rootPath uint64 = 0x9e3779b97f4a7c15

// childPath derives the path key of a child from its parent's key.
func childPath(parent uint64, side uint64) uint64 {
	return splitmix64(parent ^ (side+1)*0xbf58476d1ce4e5b9)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
