package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Kind identifies a kernel family inside a Registry.
type Kind string

// Built-in kernel kinds. The set is fixed per Registry value; custom
// kinds may be added with Registry.Register.
const (
	// RBF is the radial basis function kernel exp(-gamma·‖x−y‖²).
	RBF Kind = "rbf"

	// Linear is the plain inner product x·y.
	Linear Kind = "linear"

	// Poly is the polynomial kernel (gamma·x·y + coef0)^degree.
	Poly Kind = "poly"

	// Sigmoid is the hyperbolic-tangent kernel tanh(gamma·x·y + coef0).
	Sigmoid Kind = "sigmoid"
)

// Defaults for the polynomial and sigmoid kernels. A single gamma is
// the only per-fit scale parameter; degree and coef0 are fixed here.
const (
	// DefaultPolyDegree is the exponent of the polynomial kernel.
	DefaultPolyDegree = 3

	// DefaultCoef0 is the additive constant of the poly and sigmoid kernels.
	DefaultCoef0 = 1.0
)

// Kernel abstracts pairwise similarity over a fixed training set.
//
// Implementations are immutable after construction: the training set
// is referenced, never copied back, and SimilarityMatrix caches its
// result on first call. Callers must treat the returned matrix as
// read-only.
type Kernel interface {
	// Len returns the number of training samples N.
	Len() int

	// Dim returns the feature dimensionality d of each sample.
	Dim() int

	// SimilarityMatrix returns the symmetric N×N matrix of pairwise
	// training-set similarities. The matrix is computed on the first
	// call (O(N²·d)) and cached; subsequent calls are O(1).
	SimilarityMatrix() *mat.SymDense

	// Similarity returns the length-N vector of similarities between x
	// and every training sample, in training order.
	// Returns ErrDimensionMismatch when len(x) != Dim().
	Similarity(x []float64) ([]float64, error)
}

// training holds the shared state of every built-in kernel: the fixed
// sample set and the lazily cached similarity matrix.
type training struct {
	x     [][]float64
	dim   int
	cache *mat.SymDense
}

// newTraining validates X (non-empty, rectangular, d > 0) and wraps it.
func newTraining(x [][]float64) (training, error) {
	if len(x) == 0 || len(x[0]) == 0 {
		return training{}, ErrEmptyTrainingSet
	}
	dim := len(x[0])
	for _, row := range x {
		if len(row) != dim {
			return training{}, ErrDimensionMismatch
		}
	}

	return training{x: x, dim: dim}, nil
}

// Len returns the number of training samples.
func (t *training) Len() int { return len(t.x) }

// Dim returns the feature dimensionality.
func (t *training) Dim() int { return t.dim }

// matrix fills (or returns) the cached SymDense using pair(i, j) for
// the upper triangle; SymDense mirrors the lower triangle for free.
func (t *training) matrix(pair func(i, j int) float64) *mat.SymDense {
	if t.cache != nil {
		return t.cache
	}
	n := len(t.x)
	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			k.SetSym(i, j, pair(i, j))
		}
	}
	t.cache = k

	return k
}

// checkDim validates a query sample against the training dimension.
func (t *training) checkDim(x []float64) error {
	if len(x) != t.dim {
		return ErrDimensionMismatch
	}

	return nil
}

// checkGamma rejects NaN/Inf scale parameters for every kernel kind.
func checkGamma(gamma float64) error {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return ErrBadGamma
	}

	return nil
}
