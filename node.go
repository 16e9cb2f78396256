package nntree

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// SplitKind identifies how a Split computes routing values.
type SplitKind int

const (
	// SplitProjection routes by the dot product with Split.Direction.
	// Used by the projection and k-means strategies.
	SplitProjection SplitKind = iota
	// SplitVantagePoint routes by the distance to Split.VantagePoint.
	SplitVantagePoint
	// SplitAxis routes by the coordinate Split.Axis.
	SplitAxis
)

func (k SplitKind) String() string {
	switch k {
	case SplitProjection:
		return "projection"
	case SplitVantagePoint:
		return "vantage_point"
	case SplitAxis:
		return "axis"
	default:
		return "unknown"
	}
}

// Split is the criterion stored on an internal node. Only the fields
// belonging to Kind are meaningful.
type Split struct {
	Kind SplitKind

	// Direction is the projection vector for SplitProjection.
	Direction []float64

	// VantagePoint is the dataset row id used as the center for
	// SplitVantagePoint.
	VantagePoint int

	// Axis is the coordinate index for SplitAxis.
	Axis int

	// Threshold separates the children: routing values below it go left,
	// the rest go right.
	Threshold float64

	// Inclusive sends routing values equal to Threshold left instead of
	// right. The builder sets it only when the default rule would leave a
	// child empty.
	Inclusive bool

	center []float64 // row of VantagePoint
	metric DistanceMetric
}

// Route computes the routing value of point, exactly as the builder did
// for the samples of the node.
func (s *Split) Route(point []float64) float64 {
	switch s.Kind {
	case SplitVantagePoint:
		return s.metric.Distance(s.center, point)
	case SplitAxis:
		return point[s.Axis]
	default:
		return floats.Dot(s.Direction, point)
	}
}

// GoesLeft reports whether routing value v belongs to the left child.
func (s *Split) GoesLeft(v float64) bool {
	if s.Inclusive {
		return v <= s.Threshold
	}
	return v < s.Threshold
}

// Node is one region of the tree. Leaves have a nil Split and no children;
// internal nodes have both.
type Node struct {
	// SampleIDs are the dataset row ids in this region, in the order the
	// parent split produced them.
	SampleIDs []int
	// Size is len(SampleIDs).
	Size  int
	Split *Split
	Left  *Node
	Right *Node
}

// IsLeaf reports whether n has no split.
func (n *Node) IsLeaf() bool { return n.Split == nil }

// Splitter chooses the split criterion for a set of samples.
//
// ChooseSplit receives the ids of the node (len(ids) >= 2) and a generator
// owned by this node alone. It returns the split, with Threshold set, and
// the routing value of every id in ids order.
type Splitter interface {
	ChooseSplit(ds *Dataset, ids []int, rng *rand.Rand) (*Split, []float64)
}
