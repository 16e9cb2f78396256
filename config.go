package nntree

import (
	"log/slog"
	"runtime"
)

// Strategy selects how nodes are split during construction.
type Strategy string

const (
	// StrategyProjection splits on the projection onto the line between two
	// farthest-point pivots (ball tree).
	StrategyProjection Strategy = "projection"
	// StrategyKMeans splits on the projection onto the difference of two
	// 2-means centroids.
	StrategyKMeans Strategy = "kmeans"
	// StrategyVantagePoint splits on the distance to a vantage point.
	StrategyVantagePoint Strategy = "vantage_point"
	// StrategyAxis splits on the coordinate with the greatest spread
	// (KD-tree).
	StrategyAxis Strategy = "axis"
)

// Config controls index construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Strategy selects the split criterion. Default: "projection".
	Strategy Strategy

	// LeafSize is the largest node population stored as a leaf.
	// Must be >= 1. Default: 1.
	LeafSize int

	// Iterations is the number of Lloyd rounds run per node by the k-means
	// strategy. Must be >= 1. Default: 10.
	Iterations int

	// CandidatePool is the number of random samples scored as vantage point
	// candidates per node. Must be >= 1. Default: 50.
	CandidatePool int

	// Seed drives every random choice of the build. 0 means pick one at
	// random; the chosen value is reported by Tree.Seed.
	Seed uint64

	// Metric is the distance used to probe pivots, to pick and route by
	// vantage points, and to rank query results. The projection, k-means and
	// axis strategies require a built-in Lp metric (see CoordinateMetric).
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers bounds the goroutines used to build subtrees, to score
	// vantage point candidates of large nodes and to answer QueryBatch. 1 disables parallelism. Results never depend on it.
	// Default: runtime.NumCPU().
	Workers int

	// Logger receives debug records about construction. Default: discard.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the reference defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:      StrategyProjection,
		LeafSize:      1,
		Iterations:    10,
		CandidatePool: 50,
		Metric:        EuclideanMetric{},
		Workers:       runtime.NumCPU(),
	}
}

// applyDefaults fills in zero-valued fields that have a safe default.
// Size parameters are left alone so that validateConfig rejects them.
func applyDefaults(cfg *Config) {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyProjection
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.LeafSize < 1 {
		return configErrorf("LeafSize must be >= 1, got %d", cfg.LeafSize)
	}
	if cfg.Workers < 0 {
		return configErrorf("Workers must be >= 0, got %d", cfg.Workers)
	}
	if m, ok := cfg.Metric.(MinkowskiMetric); ok && m.P < 1 {
		return configErrorf("MinkowskiMetric.P must be >= 1, got %g", m.P)
	}
	switch cfg.Strategy {
	case StrategyProjection, StrategyAxis:
	case StrategyKMeans:
		if cfg.Iterations < 1 {
			return configErrorf("Iterations must be >= 1, got %d", cfg.Iterations)
		}
	case StrategyVantagePoint:
		if cfg.CandidatePool < 1 {
			return configErrorf("CandidatePool must be >= 1, got %d", cfg.CandidatePool)
		}
	default:
		return configErrorf("invalid Strategy %q", cfg.Strategy)
	}
	if cfg.Strategy != StrategyVantagePoint && !CoordinateMetric(cfg.Metric) {
		return configErrorf("metric %T is not supported by the %s strategy", cfg.Metric, cfg.Strategy)
	}
	return nil
}

// newSplitter returns the Splitter for a validated config.
func newSplitter(cfg Config) Splitter {
	switch cfg.Strategy {
	case StrategyKMeans:
		return KMeansSplitter{Metric: cfg.Metric, Iterations: cfg.Iterations}
	case StrategyVantagePoint:
		return VantagePointSplitter{
			Metric:        cfg.Metric,
			CandidatePool: cfg.CandidatePool,
			Workers:       cfg.Workers,
		}
	case StrategyAxis:
		return AxisSplitter{}
	default:
		return ProjectionSplitter{Metric: cfg.Metric}
	}
}
