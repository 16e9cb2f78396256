package nntree

import (
	"math/rand/v2"
	"time"
)

// Tree is an approximate nearest-neighbor index over a fixed Dataset.
// It is immutable once built and safe for concurrent queries.
type Tree struct {
	data   *Dataset
	root   *Node
	cfg    Config
	seed   uint64
	forced int
}

// Stats summarizes the shape of a Tree.
type Stats struct {
	Nodes        int
	Leaves       int
	Depth        int // edges on the longest root-to-leaf path
	LargestLeaf  int
	ForcedLeaves int // leaves above LeafSize whose samples could not be separated
}

// New copies data into a Dataset and builds a Tree over it.
// The config is checked before the data.
func New(data [][]float64, cfg Config) (*Tree, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	ds, err := NewDataset(data)
	if err != nil {
		return nil, err
	}
	return build(ds, cfg), nil
}

// NewFromDataset builds a Tree over ds. The tree keeps a reference to ds;
// the caller must not mutate it afterwards.
func NewFromDataset(ds *Dataset, cfg Config) (*Tree, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if ds.empty() {
		return nil, ErrEmptyDataset
	}
	return build(ds, cfg), nil
}

// build constructs a Tree over a non-empty ds with a validated cfg.
func build(ds *Dataset, cfg Config) *Tree {
	seed := cfg.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	cfg.Logger.Debug("building tree",
		"strategy", string(cfg.Strategy),
		"samples", ds.Len(),
		"dims", ds.Dims(),
		"leaf_size", cfg.LeafSize,
		"seed", seed,
	)
	start := time.Now()

	b := newBuilder(ds, newSplitter(cfg), cfg, seed)
	t := &Tree{
		data: ds,
		root: b.run(),
		cfg:  cfg,
		seed: seed,
	}
	t.forced = int(b.forced.Load())

	st := t.Stats()
	cfg.Logger.Debug("tree built",
		"nodes", st.Nodes,
		"leaves", st.Leaves,
		"depth", st.Depth,
		"forced_leaves", st.ForcedLeaves,
		"duration", time.Since(start),
	)
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Dataset returns the indexed points.
func (t *Tree) Dataset() *Dataset { return t.data }

// Len returns the number of indexed points.
func (t *Tree) Len() int { return t.root.Size }

// Seed returns the seed the tree was built with.
func (t *Tree) Seed() uint64 { return t.seed }

// Strategy returns the split strategy the tree was built with.
func (t *Tree) Strategy() Strategy { return t.cfg.Strategy }

// Walk calls fn for every node in pre-order with its depth below the root.
// Returning false from fn skips that node's children.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) || n.IsLeaf() {
		return
	}
	walk(n.Left, depth+1, fn)
	walk(n.Right, depth+1, fn)
}

// Stats walks the tree and reports its shape.
func (t *Tree) Stats() Stats {
	st := Stats{ForcedLeaves: t.forced}
	t.Walk(func(n *Node, depth int) bool {
		st.Nodes++
		st.Depth = max(st.Depth, depth)
		if n.IsLeaf() {
			st.Leaves++
			st.LargestLeaf = max(st.LargestLeaf, n.Size)
		}
		return true
	})
	return st
}
