package nntree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig classifies errors returned for unusable Config values.
	ErrInvalidConfig = errors.New("nntree: invalid config")

	// ErrEmptyDataset is returned when an index is built over zero points.
	ErrEmptyDataset = errors.New("nntree: dataset is empty")

	// ErrRaggedData classifies input rows of inconsistent or zero width.
	ErrRaggedData = errors.New("nntree: rows have inconsistent width")

	// ErrDimensionMismatch classifies queries whose width differs from the
	// indexed data.
	ErrDimensionMismatch = errors.New("nntree: dimension mismatch")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("nntree: k must be >= 1")
)

func configErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf("nntree: "+format, args...), ErrInvalidConfig)
}

func dimensionError(got, want int) error {
	return errors.Mark(
		errors.Newf("nntree: query has %d features, want %d", got, want),
		ErrDimensionMismatch,
	)
}
