// Package multilabel provides multi-label learning meta-estimators for Go,
// built on gonum matrices with a scikit-learn-like API.
//
// The centerpiece is the classifier chain in package multioutput: it turns
// any single-output classifier implementing the ChainableEstimator
// capability (Fit, Predict, Clone) into a multi-label model by training one
// clone per label column, each augmented with the labels of the columns
// visited earlier in the chain.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/scigo-ml/multilabel/multioutput"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})
//	    Y := mat.NewDense(4, 3, []float64{1, 0, 1, 0, 1, 0, 1, 1, 0, 0, 0, 1})
//
//	    chain, err := multioutput.NewClassifierChain(myClassifier,
//	        multioutput.WithRandomState(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := chain.Fit(X, Y); err != nil {
//	        log.Fatal(err)
//	    }
//	    yPred, err := chain.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(yPred))
//	}
//
// Package metrics evaluates multi-label predictions (Hamming loss, subset
// accuracy, Jaccard score), and package sparse provides a CSR label matrix
// that the chain densifies per stage.
package multilabel
