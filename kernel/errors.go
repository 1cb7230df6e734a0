// Package kernel: sentinel error set.
// All constructors and operations MUST return these sentinels and
// callers MUST check them via errors.Is. No operation panics on
// user-triggered conditions.

package kernel

import "errors"

var (
	// ErrUnsupportedKernel is returned by Registry.New when the requested
	// Kind has no registered constructor. Raised at model-construction
	// time so a bad kernel name never survives until fit.
	ErrUnsupportedKernel = errors.New("kernel: unsupported kernel")

	// ErrEmptyTrainingSet indicates a kernel was constructed over zero
	// samples or a sample of zero dimension.
	ErrEmptyTrainingSet = errors.New("kernel: empty training set")

	// ErrDimensionMismatch indicates ragged training rows, or a query
	// sample whose length differs from the training dimension.
	ErrDimensionMismatch = errors.New("kernel: dimension mismatch")

	// ErrBadGamma indicates a scale parameter outside the kernel's valid
	// range (rbf requires gamma > 0; all kinds reject NaN/Inf).
	ErrBadGamma = errors.New("kernel: invalid gamma")

	// ErrNilConstructor is returned by Registry.Register for a nil
	// Constructor or an empty Kind.
	ErrNilConstructor = errors.New("kernel: nil constructor or empty kind")
)
