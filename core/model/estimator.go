package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for models that can be trained.
type Fitter interface {
	// Fit trains the model on the feature matrix X and target y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can make predictions.
type Predictor interface {
	// Predict returns predictions for the rows of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator combines fitting and prediction.
type Estimator interface {
	Fitter
	Predictor
}

// ChainableEstimator is an estimator that can produce fresh, unfitted
// copies of itself. Meta-estimators that train one model per output
// clone the prototype once per position so no trained state is shared
// between positions.
type ChainableEstimator interface {
	Estimator

	// Clone returns a new, unfitted estimator carrying the same
	// hyperparameters as the receiver.
	Clone() ChainableEstimator
}
