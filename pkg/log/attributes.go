// Package log defines standard attribute keys for machine learning operations.
//
// Using these keys consistently enables structured log analysis and
// filtering across the module. Keys follow a hierarchical naming convention
// (e.g. "model.name", "data.samples").
package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "ClassifierChain"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "multioutput", "metrics"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// LabelsKey indicates the number of label columns for multi-label learning.
	LabelsKey = "data.labels"

	// DataTypeKey specifies the encoding of the data being processed.
	// Examples: "dense", "sparse"
	DataTypeKey = "data.type"
)

// Chain context. These attributes describe where in a classifier chain an
// operation takes place.
const (
	// ChainOrderKey records the permutation of label columns the chain visits.
	ChainOrderKey = "chain.order"

	// ChainPositionKey records the current position in the chain.
	ChainPositionKey = "chain.position"
)

// Performance and output context.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)
