// Package multioutput provides meta-estimators that extend single-output
// classifiers to multi-label problems.
package multioutput

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/scigo-ml/multilabel/core/model"
	"github.com/scigo-ml/multilabel/core/parallel"
	"github.com/scigo-ml/multilabel/metrics"
	"github.com/scigo-ml/multilabel/pkg/errors"
	"github.com/scigo-ml/multilabel/pkg/log"
	"github.com/scigo-ml/multilabel/sparse"
)

// Row counts at or below this are assembled sequentially.
const parallelThreshold = 1000

// ClassifierChain arranges binary classifiers into a chain for multi-label
// classification. The model at each chain position is trained on the
// original features plus the true labels of all earlier positions, and
// predicts using the earlier positions' predictions, since true labels are
// not available at inference time.
//
// The chain visits label columns in a permutation (the chain order) that is
// either supplied at construction or generated at fit time, by default a
// uniformly random shuffle of the identity order. Since the optimal order is
// not known a priori, a common usage pattern is averaging an ensemble of
// randomly ordered chains; this type implements a single chain.
//
// Reference: Jesse Read, Bernhard Pfahringer, Geoff Holmes, Eibe Frank,
// "Classifier Chains for Multi-label Classification", 2009.
type ClassifierChain struct {
	state *model.StateManager

	// Hyperparameters
	base        model.ChainableEstimator // prototype cloned once per chain position
	chainOrder  []int                    // caller-supplied order, nil to generate
	shuffle     bool                     // shuffle the generated identity order
	randomState int64                    // seed for the shuffle, -1 for time-seeded
	seeded      bool                     // WithRandomState was given
	randomSrc   *rand.Rand               // WithRandomSource, wins over the seed

	// Internal state, resolved by NewClassifierChain.
	rng *rand.Rand

	// Fitted attributes
	classifiers_ []model.ChainableEstimator // one per chain position
	chainOrder_  []int                      // order used at fit time
	nFeatures_   int
	nLabels_     int
}

// ChainOption is a functional option for ClassifierChain.
type ChainOption func(*ClassifierChain)

// WithChainOrder fixes the order in which label columns are visited.
// order[k] is the original label column trained and predicted at chain
// position k. Entries must be distinct and non-negative; the length must
// equal the label matrix's column count at fit time.
func WithChainOrder(order []int) ChainOption {
	return func(cc *ClassifierChain) {
		cc.chainOrder = order
	}
}

// WithShuffle controls whether a generated chain order is shuffled.
// It has no effect when an explicit order is supplied. Default true;
// disabling it yields the identity order [0, 1, ..., n_labels-1].
func WithShuffle(shuffle bool) ChainOption {
	return func(cc *ClassifierChain) {
		cc.shuffle = shuffle
	}
}

// WithRandomState fixes the seed used to shuffle the chain order,
// making the generated order reproducible.
func WithRandomState(seed int64) ChainOption {
	return func(cc *ClassifierChain) {
		cc.randomState = seed
		cc.seeded = true
	}
}

// WithRandomSource supplies an existing random source for the shuffle.
// Takes precedence over WithRandomState when both are given, regardless
// of the order the options appear in.
func WithRandomSource(rng *rand.Rand) ChainOption {
	return func(cc *ClassifierChain) {
		cc.randomSrc = rng
	}
}

// NewClassifierChain creates a new ClassifierChain around the given base
// estimator. The base estimator is never fitted itself; a fresh clone is
// trained for every chain position.
//
// A ConfigurationError is returned before any data is seen when base is nil
// or a supplied chain order contains negative or duplicate entries.
func NewClassifierChain(base model.ChainableEstimator, opts ...ChainOption) (*ClassifierChain, error) {
	if base == nil {
		return nil, errors.NewConfigurationError("base_estimator", "must not be nil", nil)
	}

	cc := &ClassifierChain{
		state:       model.NewStateManager(),
		base:        base,
		shuffle:     true,
		randomState: -1,
	}
	for _, opt := range opts {
		opt(cc)
	}

	if cc.chainOrder != nil {
		seen := make(map[int]bool, len(cc.chainOrder))
		for _, col := range cc.chainOrder {
			if col < 0 {
				return nil, errors.NewConfigurationError("chain_order", "entries must be non-negative", cc.chainOrder)
			}
			if seen[col] {
				return nil, errors.NewConfigurationError("chain_order", "entries must be distinct", cc.chainOrder)
			}
			seen[col] = true
		}
	}

	switch {
	case cc.randomSrc != nil:
		cc.rng = cc.randomSrc
	case cc.seeded:
		cc.rng = rand.New(rand.NewSource(cc.randomState))
	default:
		cc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cc, nil
}

// selectOrder validates the supplied chain order against the label count,
// or generates one. The returned slice is owned by the chain.
func (cc *ClassifierChain) selectOrder(nLabels int) ([]int, error) {
	if cc.chainOrder != nil {
		if len(cc.chainOrder) != nLabels {
			return nil, errors.NewValidationError("chain_order",
				"length must equal the number of label columns", len(cc.chainOrder))
		}
		for _, col := range cc.chainOrder {
			if col >= nLabels {
				return nil, errors.NewValidationError("chain_order",
					"entries must be valid label column indices", col)
			}
		}
		order := make([]int, nLabels)
		copy(order, cc.chainOrder)
		return order, nil
	}

	order := make([]int, nLabels)
	for i := range order {
		order[i] = i
	}
	if cc.shuffle {
		cc.rng.Shuffle(nLabels, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order, nil
}

// Fit trains one cloned classifier per chain position. Position k is fitted
// on [X | Y[:, order[:k]]] against target column Y[:, order[k]], with the
// true-label block densified when Y is sparse. Training is strictly
// sequential across positions: position k's input depends on which columns
// precede it in the chain.
//
// Validation failures (chain order length or range against Y) surface
// before any per-stage fit runs. Errors from a per-stage fit are returned
// unchanged; earlier positions are not rolled back, but the chain stays
// unfitted.
func (cc *ClassifierChain) Fit(X, Y mat.Matrix) error {
	if cc.state.IsFitted() {
		return errors.NewValidationError("fit",
			"chain is already fitted; call Reset() before refitting", nil)
	}

	nSamples, nFeatures := X.Dims()
	rY, nLabels := Y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("ClassifierChain.Fit", "empty feature matrix", errors.ErrEmptyData)
	}
	if nLabels == 0 {
		return errors.NewModelError("ClassifierChain.Fit", "empty label matrix", errors.ErrEmptyData)
	}
	if rY != nSamples {
		return errors.NewDimensionError("ClassifierChain.Fit", nSamples, rY, 0)
	}

	order, err := cc.selectOrder(nLabels)
	if err != nil {
		return err
	}

	logger := log.GetLoggerWithName("multioutput.chain").With(log.ModelNameKey, "ClassifierChain")
	logger.Debug("Fitting classifier chain",
		log.OperationKey, "fit",
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.LabelsKey, nLabels,
		log.ChainOrderKey, order)

	// Sparse labels are materialized once up front; label blocks and targets
	// below read the dense form instead of probing the CSR row by row.
	labels := Y
	if sm, ok := Y.(sparse.Matrix); ok {
		errors.Warn(errors.NewDataConversionWarning("sparse", "dense",
			"label blocks are densified for per-stage fitting"))
		labels = sm.ToDense()
	}

	classifiers := make([]model.ChainableEstimator, nLabels)
	for k := 0; k < nLabels; k++ {
		// Augmented input: X plus the true labels of the columns visited
		// before position k, in chain order.
		aug := newAugmented(X, nSamples, nFeatures, k)
		for p := 0; p < k; p++ {
			col := order[p]
			for i := 0; i < nSamples; i++ {
				aug.Set(i, nFeatures+p, labels.At(i, col))
			}
		}

		target := sparse.DenseColumn(labels, order[k], nSamples)

		clf := cc.base.Clone()
		if err := clf.Fit(aug, target); err != nil {
			// Upstream failure, propagated unchanged.
			logger.Error("Aborting chain fit",
				log.OperationKey, "fit",
				log.ChainPositionKey, k,
				log.ErrAttr(err))
			return err
		}
		classifiers[k] = clf
	}

	cc.classifiers_ = classifiers
	cc.chainOrder_ = order
	cc.nFeatures_ = nFeatures
	cc.nLabels_ = nLabels
	cc.state.SetDimensions(nFeatures, nSamples)
	cc.state.SetFitted()

	logger.Info("Classifier chain fitted",
		log.OperationKey, "fit",
		log.SamplesKey, nSamples,
		log.LabelsKey, nLabels)

	return nil
}

// Predict returns an n_samples × n_labels prediction matrix with columns in
// original label order. Each chain position predicts on X augmented with
// the predictions of all earlier positions, then the per-position columns
// are permuted back through the inverse of the chain order.
//
// The values are whatever the per-stage classifiers' Predict returns; no
// thresholding or calibration is applied at this level.
func (cc *ClassifierChain) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := cc.state.RequireFitted("ClassifierChain", "Predict"); err != nil {
		return nil, err
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != cc.nFeatures_ {
		return nil, errors.NewDimensionError("ClassifierChain.Predict", cc.nFeatures_, nFeatures, 1)
	}

	// Accumulator indexed by chain position, not by original column.
	acc := mat.NewDense(nSamples, cc.nLabels_, nil)

	for k, clf := range cc.classifiers_ {
		aug := newAugmented(X, nSamples, nFeatures, k)
		for p := 0; p < k; p++ {
			for i := 0; i < nSamples; i++ {
				aug.Set(i, nFeatures+p, acc.At(i, p))
			}
		}

		out, err := clf.Predict(aug)
		if err != nil {
			// Upstream failure, propagated unchanged.
			return nil, err
		}
		rOut, cOut := out.Dims()
		if rOut != nSamples {
			return nil, errors.NewDimensionError("ClassifierChain.Predict", nSamples, rOut, 0)
		}
		if cOut != 1 {
			return nil, errors.NewValueError("ClassifierChain.Predict",
				"per-stage classifier must return an n×1 prediction matrix")
		}

		for i := 0; i < nSamples; i++ {
			acc.Set(i, k, out.At(i, 0))
		}
	}

	// Inverse permutation: original column index -> chain position.
	inverse := make([]int, cc.nLabels_)
	for p, col := range cc.chainOrder_ {
		inverse[col] = p
	}

	pred := mat.NewDense(nSamples, cc.nLabels_, nil)
	for j := 0; j < cc.nLabels_; j++ {
		p := inverse[j]
		for i := 0; i < nSamples; i++ {
			pred.Set(i, j, acc.At(i, p))
		}
	}

	return pred, nil
}

// Score returns the subset accuracy of Predict(X) against Y: the fraction
// of samples whose full label vector is predicted exactly.
func (cc *ClassifierChain) Score(X, Y mat.Matrix) (float64, error) {
	if err := cc.state.RequireFitted("ClassifierChain", "Score"); err != nil {
		return 0, err
	}

	yPred, err := cc.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.SubsetAccuracy(Y, yPred)
}

// Reset returns the chain to its unfitted state, discarding the trained
// model sequence and any generated chain order. A caller-supplied chain
// order survives and is reused by the next Fit.
func (cc *ClassifierChain) Reset() {
	cc.state.Reset()
	cc.classifiers_ = nil
	cc.chainOrder_ = nil
	cc.nFeatures_ = 0
	cc.nLabels_ = 0
}

// IsFitted returns whether the chain has been fitted.
func (cc *ClassifierChain) IsFitted() bool {
	return cc.state.IsFitted()
}

// ChainOrder returns a copy of the order used at fit time, or nil when the
// chain has not been fitted.
func (cc *ClassifierChain) ChainOrder() []int {
	if cc.chainOrder_ == nil {
		return nil
	}
	order := make([]int, len(cc.chainOrder_))
	copy(order, cc.chainOrder_)
	return order
}

// Classifiers returns the trained model sequence, indexed by chain position.
// The returned slice is a copy; the estimators are the fitted instances.
func (cc *ClassifierChain) Classifiers() []model.ChainableEstimator {
	if cc.classifiers_ == nil {
		return nil
	}
	out := make([]model.ChainableEstimator, len(cc.classifiers_))
	copy(out, cc.classifiers_)
	return out
}

// NFeatures returns the number of features seen at fit time.
func (cc *ClassifierChain) NFeatures() int {
	nFeatures, _ := cc.state.GetDimensions()
	return nFeatures
}

// NSamples returns the number of samples seen at fit time.
func (cc *ClassifierChain) NSamples() int {
	_, nSamples := cc.state.GetDimensions()
	return nSamples
}

// NLabels returns the number of label columns seen at fit time.
func (cc *ClassifierChain) NLabels() int { return cc.nLabels_ }

// GetParams returns the chain's hyperparameters. When deep is true and the
// base estimator exposes its own parameters, they are included with a
// "base_estimator__" prefix.
func (cc *ClassifierChain) GetParams(deep bool) map[string]interface{} {
	var order []int
	if cc.chainOrder != nil {
		order = make([]int, len(cc.chainOrder))
		copy(order, cc.chainOrder)
	}

	params := map[string]interface{}{
		"base_estimator": cc.base,
		"chain_order":    order,
		"shuffle":        cc.shuffle,
		"random_state":   cc.randomState,
	}

	if deep {
		if pg, ok := cc.base.(model.ParameterGetter); ok {
			for k, v := range pg.GetParams(true) {
				params["base_estimator__"+k] = v
			}
		}
	}

	return params
}

// SetParams sets hyperparameters by name. Changes take effect at the next
// Fit; a fitted chain must be Reset before refitting.
func (cc *ClassifierChain) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "base_estimator":
			base, ok := value.(model.ChainableEstimator)
			if !ok || base == nil {
				return errors.NewValidationError(key, "must be a non-nil ChainableEstimator", value)
			}
			cc.base = base
		case "shuffle":
			shuffle, ok := value.(bool)
			if !ok {
				return errors.NewValidationError(key, "must be a bool", value)
			}
			cc.shuffle = shuffle
		case "random_state":
			var seed int64
			switch v := value.(type) {
			case int64:
				seed = v
			case int:
				seed = int64(v)
			default:
				return errors.NewValidationError(key, "must be an integer seed", value)
			}
			cc.randomState = seed
			cc.seeded = true
			cc.rng = rand.New(rand.NewSource(seed))
		case "chain_order":
			order, ok := value.([]int)
			if !ok {
				return errors.NewValidationError(key, "must be a []int permutation", value)
			}
			seen := make(map[int]bool, len(order))
			for _, col := range order {
				if col < 0 || seen[col] {
					return errors.NewValidationError(key, "entries must be distinct and non-negative", order)
				}
				seen[col] = true
			}
			cc.chainOrder = order
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	return nil
}

// newAugmented allocates an nSamples × (nFeatures+extra) matrix with X
// copied into the left block. The label columns in the right block are
// filled in by the caller.
func newAugmented(X mat.Matrix, nSamples, nFeatures, extra int) *mat.Dense {
	aug := mat.NewDense(nSamples, nFeatures+extra, nil)
	parallel.ParallelizeWithThreshold(nSamples, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < nFeatures; j++ {
				aug.Set(i, j, X.At(i, j))
			}
		}
	})
	return aug
}

// Interface conformance.
var (
	_ model.Estimator       = (*ClassifierChain)(nil)
	_ model.ParameterGetter = (*ClassifierChain)(nil)
	_ model.ParameterSetter = (*ClassifierChain)(nil)
)
