package estimator

import (
	"github.com/kvasirml/kridge/augment"
)

// AugmentedClassifier is a Classifier with an image front end: fit
// first expands the dataset with label-preserving flips and rotations,
// then extracts HOG features; predict extracts the same HOG features
// and classifies. Augmentation is strictly a training step — Predict
// never touches it.
type AugmentedClassifier struct {
	opts  options
	inner *Classifier
}

// NewAugmentedClassifier builds an unfitted AugmentedClassifier. An
// unknown kernel kind fails here with kernel.ErrUnsupportedKernel.
func NewAugmentedClassifier(opts ...Option) (*AugmentedClassifier, error) {
	o := gatherOptions(opts...)
	inner, err := NewClassifier(opts...)
	if err != nil {
		return nil, err
	}

	return &AugmentedClassifier{opts: o, inner: inner}, nil
}

// Fit augments (X, y), extracts HOG features from the expanded set and
// fits the underlying one-vs-all classifier on them. Returns the
// receiver for chaining. Augmentation randomness is fixed by the
// configured seed, so identical inputs and options refit identically.
func (a *AugmentedClassifier) Fit(x [][]float64, y []int) (*AugmentedClassifier, error) {
	if len(x) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(x) != len(y) {
		return nil, ErrSizeMismatch
	}

	augX, augY, err := augment.Augment(x, y,
		augment.WithFlipRatio(a.opts.flipRatio),
		augment.WithRotReplicas(a.opts.rotReplicas),
		augment.WithRotRatio(a.opts.rotRatio),
		augment.WithRotAngle(a.opts.rotAngle),
		augment.WithSeed(a.opts.seed),
	)
	if err != nil {
		return nil, err
	}

	features, err := a.opts.extractor.Transform(augX)
	if err != nil {
		return nil, err
	}

	if _, err = a.inner.Fit(features, augY); err != nil {
		return nil, err
	}

	return a, nil
}

// Predict extracts HOG features from X (no augmentation) and returns
// one training-vocabulary label per sample, in input order.
// Returns ErrNotFitted before a successful Fit.
func (a *AugmentedClassifier) Predict(x [][]float64) ([]int, error) {
	if a.inner.kern == nil {
		return nil, ErrNotFitted
	}

	features, err := a.opts.extractor.Transform(x)
	if err != nil {
		return nil, err
	}

	return a.inner.Predict(features)
}

// Classes returns the sorted label vocabulary learned at fit, or nil
// before fit.
func (a *AugmentedClassifier) Classes() []int { return a.inner.Classes() }
