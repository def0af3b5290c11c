package sparse

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/scigo-ml/multilabel/pkg/errors"
)

func TestCSRFromDenseRoundTrip(t *testing.T) {
	d := mat.NewDense(3, 4, []float64{
		1, 0, 0, 2,
		0, 0, 0, 0,
		0, 3, 4, 0,
	})

	c := CSRFromDense(d)

	if r, cols := c.Dims(); r != 3 || cols != 4 {
		t.Fatalf("Dims() = (%d, %d), want (3, 4)", r, cols)
	}
	if c.NNZ() != 4 {
		t.Errorf("NNZ() = %d, want 4", c.NNZ())
	}

	// At must return stored values and zeros alike.
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if got, want := c.At(i, j), d.At(i, j); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}

	back := c.ToDense()
	if !mat.Equal(back, d) {
		t.Error("ToDense() does not match the original dense matrix")
	}
}

func TestNewCSRValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		indptr  []int
		indices []int
		data    []float64
	}{
		{
			name: "indptr length mismatch",
			rows: 2, cols: 2,
			indptr: []int{0, 1}, indices: []int{0}, data: []float64{1},
		},
		{
			name: "indptr not starting at zero",
			rows: 1, cols: 2,
			indptr: []int{1, 2}, indices: []int{0}, data: []float64{1},
		},
		{
			name: "decreasing indptr",
			rows: 2, cols: 2,
			indptr: []int{0, 2, 1}, indices: []int{0, 1}, data: []float64{1, 2},
		},
		{
			name: "column index out of range",
			rows: 1, cols: 2,
			indptr: []int{0, 1}, indices: []int{5}, data: []float64{1},
		},
		{
			name: "data length mismatch",
			rows: 1, cols: 2,
			indptr: []int{0, 1}, indices: []int{0}, data: []float64{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCSR(tt.rows, tt.cols, tt.indptr, tt.indices, tt.data)
			if err == nil {
				t.Fatal("NewCSR should have failed")
			}
			var valErr *errors.ValueError
			if !errors.As(err, &valErr) {
				t.Errorf("expected *ValueError, got %T: %v", err, err)
			}
		})
	}
}

func TestNewCSRValid(t *testing.T) {
	c, err := NewCSR(2, 3, []int{0, 2, 3}, []int{0, 2, 1}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewCSR failed: %v", err)
	}

	want := mat.NewDense(2, 3, []float64{
		1, 0, 2,
		0, 3, 0,
	})
	if !mat.Equal(c.ToDense(), want) {
		t.Error("ToDense() does not match expected matrix")
	}
}

func TestIsSparse(t *testing.T) {
	c := CSRFromDense(mat.NewDense(1, 1, []float64{1}))
	if !IsSparse(c) {
		t.Error("IsSparse(CSR) should be true")
	}
	if IsSparse(mat.NewDense(1, 1, nil)) {
		t.Error("IsSparse(Dense) should be false")
	}
}

func TestCSRTranspose(t *testing.T) {
	c := CSRFromDense(mat.NewDense(2, 3, []float64{
		1, 0, 2,
		0, 3, 0,
	}))

	tr := c.T()
	if r, cols := tr.Dims(); r != 3 || cols != 2 {
		t.Fatalf("T().Dims() = (%d, %d), want (3, 2)", r, cols)
	}
	if tr.At(2, 0) != 2 {
		t.Errorf("T().At(2, 0) = %v, want 2", tr.At(2, 0))
	}
}

func TestDenseColumn(t *testing.T) {
	c := CSRFromDense(mat.NewDense(3, 2, []float64{
		0, 1,
		1, 0,
		0, 1,
	}))

	col := DenseColumn(c, 1, 3)
	if r, cols := col.Dims(); r != 3 || cols != 1 {
		t.Fatalf("DenseColumn dims = (%d, %d), want (3, 1)", r, cols)
	}
	for i, want := range []float64{1, 0, 1} {
		if col.At(i, 0) != want {
			t.Errorf("column[%d] = %v, want %v", i, col.At(i, 0), want)
		}
	}
}
