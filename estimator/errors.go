// Package estimator: sentinel error set. Callers match via errors.Is.
// Kernel- and solver-specific failures surface unchanged from the
// kernel and ridge packages (kernel.ErrUnsupportedKernel,
// ridge.ErrNotPositiveDefinite, ...).

package estimator

import "errors"

var (
	// ErrNotFitted indicates Predict was called before a successful Fit.
	ErrNotFitted = errors.New("estimator: not fitted")

	// ErrEmptyDataset indicates Fit received no samples.
	ErrEmptyDataset = errors.New("estimator: empty dataset")

	// ErrSizeMismatch indicates len(X) != len(y) at fit time.
	ErrSizeMismatch = errors.New("estimator: samples and targets differ in length")
)
