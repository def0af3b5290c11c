// Package model provides the estimator capability interfaces and the shared
// fitted-state manager used by the meta-estimators in this module.
package model

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters. When deep is true,
	// parameters of nested estimators are included with a
	// "<name>__" prefix, mirroring scikit-learn's convention.
	GetParams(deep bool) map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter
// modification after construction.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}
