package kernel

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// linearKernel is the plain inner product k(x, y) = x·y.
// Gamma is accepted for interface uniformity but unused.
type linearKernel struct {
	training
}

// NewLinear constructs a linear kernel over X. The gamma argument is
// ignored beyond finiteness validation.
func NewLinear(x [][]float64, gamma float64) (Kernel, error) {
	if err := checkGamma(gamma); err != nil {
		return nil, err
	}
	t, err := newTraining(x)
	if err != nil {
		return nil, err
	}

	return &linearKernel{training: t}, nil
}

// SimilarityMatrix returns the cached N×N Gram matrix.
func (k *linearKernel) SimilarityMatrix() *mat.SymDense {
	return k.matrix(func(i, j int) float64 {
		return floats.Dot(k.x[i], k.x[j])
	})
}

// Similarity returns x·x_j for every training sample j.
func (k *linearKernel) Similarity(x []float64) ([]float64, error) {
	if err := k.checkDim(x); err != nil {
		return nil, err
	}
	out := make([]float64, k.Len())
	for j, xj := range k.x {
		out[j] = floats.Dot(x, xj)
	}

	return out, nil
}
