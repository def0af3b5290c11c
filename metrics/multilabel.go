// Package metrics provides evaluation metrics for multi-label predictions.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/scigo-ml/multilabel/pkg/errors"
)

// validateShapes checks that yTrue and yPred are non-empty matrices of the
// same shape.
func validateShapes(op string, yTrue, yPred mat.Matrix) (rows, cols int, err error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, 0, errors.NewValueError(op, "empty matrix")
	}
	if rTrue != rPred {
		return 0, 0, errors.NewDimensionError(op, rTrue, rPred, 0)
	}
	if cTrue != cPred {
		return 0, 0, errors.NewDimensionError(op, cTrue, cPred, 1)
	}

	return rTrue, cTrue, nil
}

// HammingLoss computes the fraction of label slots that are predicted
// incorrectly, averaged over all samples and labels. Lower is better;
// 0 means every label of every sample was predicted exactly.
func HammingLoss(yTrue, yPred mat.Matrix) (float64, error) {
	rows, cols, err := validateShapes("HammingLoss", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var wrong int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if yTrue.At(i, j) != yPred.At(i, j) {
				wrong++
			}
		}
	}

	return float64(wrong) / float64(rows*cols), nil
}

// SubsetAccuracy computes the fraction of samples whose full label vector
// is predicted exactly. This is the strictest multi-label accuracy notion:
// one wrong label fails the whole sample.
func SubsetAccuracy(yTrue, yPred mat.Matrix) (float64, error) {
	rows, cols, err := validateShapes("SubsetAccuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var exact int
	for i := 0; i < rows; i++ {
		match := true
		for j := 0; j < cols; j++ {
			if yTrue.At(i, j) != yPred.At(i, j) {
				match = false
				break
			}
		}
		if match {
			exact++
		}
	}

	return float64(exact) / float64(rows), nil
}

// JaccardScore computes the sample-averaged Jaccard similarity between the
// true and predicted label sets, treating any nonzero entry as a positive
// label. A sample with no positive labels on either side scores 1: the
// empty sets agree.
func JaccardScore(yTrue, yPred mat.Matrix) (float64, error) {
	rows, cols, err := validateShapes("JaccardScore", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 0; i < rows; i++ {
		var intersection, union int
		for j := 0; j < cols; j++ {
			truePos := yTrue.At(i, j) != 0
			predPos := yPred.At(i, j) != 0
			if truePos && predPos {
				intersection++
			}
			if truePos || predPos {
				union++
			}
		}
		if union == 0 {
			total++
			continue
		}
		total += float64(intersection) / float64(union)
	}

	return total / float64(rows), nil
}
