package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/scigo-ml/multilabel/pkg/errors"
)

const eps = 1e-12

func TestHammingLoss(t *testing.T) {
	yTrue := mat.NewDense(3, 3, []float64{
		1, 0, 1,
		0, 1, 0,
		1, 1, 1,
	})
	yPred := mat.NewDense(3, 3, []float64{
		1, 0, 0, // 1 wrong
		0, 1, 0, // all right
		0, 1, 1, // 1 wrong
	})

	loss, err := HammingLoss(yTrue, yPred)
	if err != nil {
		t.Fatalf("HammingLoss failed: %v", err)
	}
	if want := 2.0 / 9.0; math.Abs(loss-want) > eps {
		t.Errorf("HammingLoss = %v, want %v", loss, want)
	}
}

func TestHammingLossPerfect(t *testing.T) {
	y := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	loss, err := HammingLoss(y, y)
	if err != nil {
		t.Fatalf("HammingLoss failed: %v", err)
	}
	if loss != 0 {
		t.Errorf("HammingLoss on identical matrices = %v, want 0", loss)
	}
}

func TestSubsetAccuracy(t *testing.T) {
	yTrue := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		0, 0,
	})
	yPred := mat.NewDense(4, 2, []float64{
		1, 0, // exact
		1, 1, // wrong
		1, 1, // exact
		0, 1, // wrong
	})

	acc, err := SubsetAccuracy(yTrue, yPred)
	if err != nil {
		t.Fatalf("SubsetAccuracy failed: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("SubsetAccuracy = %v, want 0.5", acc)
	}
}

func TestJaccardScore(t *testing.T) {
	yTrue := mat.NewDense(3, 3, []float64{
		1, 1, 0, // sets {0,1} vs {0}: 1/2
		0, 0, 0, // empty vs empty: 1
		1, 0, 1, // {0,2} vs {0,2}: 1
	})
	yPred := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 0, 0,
		1, 0, 1,
	})

	score, err := JaccardScore(yTrue, yPred)
	if err != nil {
		t.Fatalf("JaccardScore failed: %v", err)
	}
	if want := (0.5 + 1 + 1) / 3; math.Abs(score-want) > eps {
		t.Errorf("JaccardScore = %v, want %v", score, want)
	}
}

func TestShapeValidation(t *testing.T) {
	yTrue := mat.NewDense(2, 2, nil)
	yWrongRows := mat.NewDense(3, 2, nil)
	yWrongCols := mat.NewDense(2, 3, nil)

	metricsUnderTest := []struct {
		name string
		fn   func(a, b mat.Matrix) (float64, error)
	}{
		{"HammingLoss", HammingLoss},
		{"SubsetAccuracy", SubsetAccuracy},
		{"JaccardScore", JaccardScore},
	}

	for _, m := range metricsUnderTest {
		t.Run(m.name, func(t *testing.T) {
			if _, err := m.fn(yTrue, yWrongRows); err == nil {
				t.Error("row mismatch should fail")
			}
			if _, err := m.fn(yTrue, yWrongCols); err == nil {
				t.Error("column mismatch should fail")
			}

			_, err := m.fn(mat.NewDense(1, 1, nil), yWrongRows)
			var dimErr *errors.DimensionError
			if !errors.As(err, &dimErr) {
				t.Errorf("expected *DimensionError, got %T: %v", err, err)
			}
		})
	}
}
