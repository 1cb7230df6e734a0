package estimator

import (
	"gonum.org/v1/gonum/floats"

	"github.com/kvasirml/kridge/kernel"
	"github.com/kvasirml/kridge/ridge"
)

// Regressor is a kernel ridge regressor: fit solves
// (K + C·N·I)·alpha = y once, predict returns dot(alpha, similarity(x))
// per input. Construct with NewRegressor; hyperparameters are fixed
// from then on.
type Regressor struct {
	opts  options
	kern  kernel.Kernel
	alpha []float64
}

// NewRegressor builds an unfitted Regressor. The kernel kind is
// validated against the registry here — an unknown kind fails with
// kernel.ErrUnsupportedKernel at construction, not at fit.
func NewRegressor(opts ...Option) (*Regressor, error) {
	o := gatherOptions(opts...)
	if !o.registry.Supports(o.kind) {
		return nil, kernel.ErrUnsupportedKernel
	}

	return &Regressor{opts: o}, nil
}

// Fit learns dual coefficients from (X, y) and returns the receiver
// for chaining. Refitting replaces the previous model state.
//
// Errors: ErrEmptyDataset, ErrSizeMismatch, kernel construction errors
// (kernel.ErrBadGamma, kernel.ErrDimensionMismatch), and
// ridge.ErrNotPositiveDefinite on a singular system.
func (r *Regressor) Fit(x [][]float64, y []float64) (*Regressor, error) {
	if len(x) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(x) != len(y) {
		return nil, ErrSizeMismatch
	}

	kern, err := r.opts.registry.New(r.opts.kind, x, r.opts.gamma)
	if err != nil {
		return nil, err
	}

	r.opts.progress.fire(StageKernelMatrix, 0, 1)
	similarity := kern.SimilarityMatrix()
	r.opts.progress.fire(StageKernelMatrix, 1, 1)

	system, err := ridge.NewSystem(similarity, r.opts.c)
	if err != nil {
		return nil, err
	}
	alpha, err := system.Solve(y)
	if err != nil {
		return nil, err
	}
	r.opts.progress.fire(StageSolve, 1, 1)

	r.kern = kern
	r.alpha = alpha

	return r, nil
}

// Predict returns one real output per input sample, in input order.
// Returns ErrNotFitted before a successful Fit.
func (r *Regressor) Predict(x [][]float64) ([]float64, error) {
	if r.kern == nil {
		return nil, ErrNotFitted
	}

	out := make([]float64, len(x))
	for i, xi := range x {
		s, err := r.kern.Similarity(xi)
		if err != nil {
			return nil, err
		}
		out[i] = floats.Dot(r.alpha, s)
		r.opts.progress.fire(StagePredict, i+1, len(x))
	}

	return out, nil
}

// Alpha returns the fitted dual coefficients (length N), or nil before
// fit. The returned slice is the model's own state; treat as read-only.
func (r *Regressor) Alpha() []float64 { return r.alpha }
