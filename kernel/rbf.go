package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// rbfKernel is the radial basis function kernel
//
//	k(x, y) = exp(-gamma·‖x−y‖²)
//
// Squared norms of the training samples are precomputed once, so each
// pairwise entry costs a single dot product:
//
//	‖x−y‖² = ‖x‖² + ‖y‖² − 2·x·y
type rbfKernel struct {
	training
	gamma  float64
	sqNorm []float64 // ‖x_i‖² per training sample
}

// NewRBF constructs an RBF kernel over X with scale gamma.
// Returns ErrBadGamma when gamma <= 0 (a non-positive gamma makes the
// kernel constant or explosive, never positive semi-definite).
func NewRBF(x [][]float64, gamma float64) (Kernel, error) {
	if err := checkGamma(gamma); err != nil {
		return nil, err
	}
	if gamma <= 0 {
		return nil, ErrBadGamma
	}
	t, err := newTraining(x)
	if err != nil {
		return nil, err
	}

	sq := make([]float64, len(x))
	for i, xi := range x {
		sq[i] = floats.Dot(xi, xi)
	}

	return &rbfKernel{training: t, gamma: gamma, sqNorm: sq}, nil
}

// SimilarityMatrix returns the cached N×N RBF similarity matrix.
func (k *rbfKernel) SimilarityMatrix() *mat.SymDense {
	return k.matrix(func(i, j int) float64 {
		d2 := k.sqNorm[i] + k.sqNorm[j] - 2*floats.Dot(k.x[i], k.x[j])

		return math.Exp(-k.gamma * d2)
	})
}

// Similarity returns exp(-gamma·‖x−x_j‖²) for every training sample j.
func (k *rbfKernel) Similarity(x []float64) ([]float64, error) {
	if err := k.checkDim(x); err != nil {
		return nil, err
	}
	xs := floats.Dot(x, x)
	out := make([]float64, k.Len())
	for j, xj := range k.x {
		d2 := xs + k.sqNorm[j] - 2*floats.Dot(x, xj)
		out[j] = math.Exp(-k.gamma * d2)
	}

	return out, nil
}
