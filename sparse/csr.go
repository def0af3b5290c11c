// Package sparse provides a compressed sparse row matrix for label data.
//
// Label matrices in multi-label problems are often mostly zero. The chain
// estimators in this module accept any mat.Matrix; when the matrix also
// implements sparse.Matrix they densify label blocks explicitly instead of
// probing the representation element by element.
package sparse

import (
	"gonum.org/v1/gonum/mat"

	"github.com/scigo-ml/multilabel/pkg/errors"
)

// Matrix is a sparse matrix that can be materialized into dense form.
// It is the tagged counterpart to a plain dense mat.Matrix: callers that
// need dense data dispatch on this interface with a single type assertion.
type Matrix interface {
	mat.Matrix

	// ToDense materializes the full matrix, including explicit zeros.
	ToDense() *mat.Dense
}

// IsSparse reports whether m uses a sparse encoding.
func IsSparse(m mat.Matrix) bool {
	_, ok := m.(Matrix)
	return ok
}

// CSR is a compressed sparse row matrix. Rows are stored as slices of the
// indices and data arrays delimited by indptr, the standard CSR layout.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

var _ Matrix = (*CSR)(nil)

// NewCSR constructs a CSR matrix from raw CSR arrays. indptr must have
// rows+1 nondecreasing entries starting at 0; indices and data must have
// indptr[rows] entries, with every index in [0, cols).
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.NewValueError("NewCSR", "matrix dimensions must be non-negative")
	}
	if len(indptr) != rows+1 {
		return nil, errors.NewValueError("NewCSR", "indptr must have rows+1 entries")
	}
	if indptr[0] != 0 {
		return nil, errors.NewValueError("NewCSR", "indptr must start at 0")
	}
	for i := 1; i < len(indptr); i++ {
		if indptr[i] < indptr[i-1] {
			return nil, errors.NewValueError("NewCSR", "indptr must be nondecreasing")
		}
	}
	nnz := indptr[rows]
	if len(indices) != nnz || len(data) != nnz {
		return nil, errors.NewValueError("NewCSR", "indices and data must have indptr[rows] entries")
	}
	for _, j := range indices {
		if j < 0 || j >= cols {
			return nil, errors.NewValueError("NewCSR", "column index out of range")
		}
	}

	return &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  indptr,
		indices: indices,
		data:    data,
	}, nil
}

// CSRFromDense compresses a dense matrix, keeping only nonzero entries.
func CSRFromDense(m mat.Matrix) *CSR {
	rows, cols := m.Dims()
	indptr := make([]int, rows+1)
	var indices []int
	var data []float64

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); v != 0 {
				indices = append(indices, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(indices)
	}

	return &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  indptr,
		indices: indices,
		data:    data,
	}
}

// Dims returns the dimensions of the matrix.
func (c *CSR) Dims() (r, cols int) {
	return c.rows, c.cols
}

// At returns the value at (i, j). It panics when the indices are out of
// range, matching gonum's mat.Matrix contract.
func (c *CSR) At(i, j int) float64 {
	if i < 0 || i >= c.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= c.cols {
		panic(mat.ErrColAccess)
	}
	for p := c.indptr[i]; p < c.indptr[i+1]; p++ {
		if c.indices[p] == j {
			return c.data[p]
		}
	}
	return 0
}

// T returns the transpose of the matrix.
func (c *CSR) T() mat.Matrix {
	return mat.Transpose{Matrix: c}
}

// NNZ returns the number of stored (nonzero) entries.
func (c *CSR) NNZ() int {
	return c.indptr[c.rows]
}

// ToDense materializes the full matrix.
func (c *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(c.rows, c.cols, nil)
	for i := 0; i < c.rows; i++ {
		for p := c.indptr[i]; p < c.indptr[i+1]; p++ {
			d.Set(i, c.indices[p], c.data[p])
		}
	}
	return d
}

// DenseColumn extracts column j of m into a fresh n×1 dense matrix,
// densifying sparse input. n must equal the row count of m.
func DenseColumn(m mat.Matrix, j, n int) *mat.Dense {
	col := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		col.Set(i, 0, m.At(i, j))
	}
	return col
}
