package nntree

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset is an immutable n×d matrix of points, one point per row.
// Rows are handed out as views into the backing storage; callers must not
// write to them.
type Dataset struct {
	m *mat.Dense
}

// NewDataset copies rows into a new Dataset. All rows must share the same,
// non-zero width.
func NewDataset(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	dims := len(rows[0])
	if dims == 0 {
		return nil, errors.Mark(errors.New("nntree: rows must have at least one feature"), ErrRaggedData)
	}
	flat := make([]float64, 0, len(rows)*dims)
	for i, row := range rows {
		if len(row) != dims {
			return nil, errors.Mark(
				errors.Newf("nntree: row %d has %d features, want %d", i, len(row), dims),
				ErrRaggedData,
			)
		}
		flat = append(flat, row...)
	}
	return &Dataset{m: mat.NewDense(len(rows), dims, flat)}, nil
}

// NewDatasetFromDense wraps m without copying. The caller must not mutate m
// for as long as the Dataset, or any tree built over it, is in use.
func NewDatasetFromDense(m *mat.Dense) (*Dataset, error) {
	if m == nil || m.IsEmpty() {
		return nil, ErrEmptyDataset
	}
	return &Dataset{m: m}, nil
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	r, _ := d.m.Dims()
	return r
}

// empty reports whether d holds no points, including the nil and zero
// Dataset.
func (d *Dataset) empty() bool {
	return d == nil || d.m == nil || d.m.IsEmpty()
}

// Dims returns the width of every point.
func (d *Dataset) Dims() int {
	_, c := d.m.Dims()
	return c
}

// Row returns a view of point i.
func (d *Dataset) Row(i int) []float64 { return d.m.RawRowView(i) }

// Dense returns the backing matrix.
func (d *Dataset) Dense() *mat.Dense { return d.m }

// subset copies the rows selected by ids, which must be non-empty, into a
// new Dataset.
func (d *Dataset) subset(ids []int) *Dataset {
	m := mat.NewDense(len(ids), d.Dims(), nil)
	for i, id := range ids {
		m.SetRow(i, d.Row(id))
	}
	return &Dataset{m: m}
}
