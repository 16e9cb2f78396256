// Package nntree implements space-partitioning trees for approximate
// nearest-neighbor search.
//
// A Tree recursively splits a fixed set of points into two halves at the
// median of a per-node routing value until nodes hold at most LeafSize
// points. A query follows one root-to-region path, stopping above any child
// too small to hold k points, and ranks that region by true distance. The
// search never backtracks: it trades recall near split boundaries for speed.
//
// Basic usage:
//
//	cfg := nntree.DefaultConfig()
//	cfg.Strategy = nntree.StrategyVantagePoint
//	cfg.LeafSize = 20
//	tree, err := nntree.New(points, cfg)
//	ids, dists, err := tree.Query(q, 10)
//	// ids[i] is a row of points; dists is ascending
//
// # Strategies
//
// The strategy decides what a node splits on:
//
//	nntree.StrategyProjection   // line between two farthest-point pivots (ball tree)
//	nntree.StrategyKMeans       // difference of two Lloyd's-algorithm centroids
//	nntree.StrategyVantagePoint // distance to a high-spread sample; any metric
//	nntree.StrategyAxis         // coordinate with the greatest spread (KD-tree)
//
// Builds are reproducible: every random choice derives from Config.Seed,
// which Tree.Seed reports even when it was generated.
package nntree
