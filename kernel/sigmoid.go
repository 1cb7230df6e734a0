package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// sigmoidKernel is the hyperbolic-tangent kernel
//
//	k(x, y) = tanh(gamma·x·y + coef0)
//
// Note: sigmoid similarity is not positive semi-definite for every
// (gamma, coef0); a failed ridge solve on a sigmoid matrix reports
// ridge.ErrNotPositiveDefinite rather than returning garbage.
type sigmoidKernel struct {
	training
	gamma float64
	coef0 float64
}

// NewSigmoid constructs a sigmoid kernel over X with scale gamma.
func NewSigmoid(x [][]float64, gamma float64) (Kernel, error) {
	if err := checkGamma(gamma); err != nil {
		return nil, err
	}
	t, err := newTraining(x)
	if err != nil {
		return nil, err
	}

	return &sigmoidKernel{training: t, gamma: gamma, coef0: DefaultCoef0}, nil
}

// SimilarityMatrix returns the cached N×N sigmoid similarity matrix.
func (k *sigmoidKernel) SimilarityMatrix() *mat.SymDense {
	return k.matrix(func(i, j int) float64 {
		return math.Tanh(k.gamma*floats.Dot(k.x[i], k.x[j]) + k.coef0)
	})
}

// Similarity returns tanh(gamma·x·x_j + coef0) for every training sample j.
func (k *sigmoidKernel) Similarity(x []float64) ([]float64, error) {
	if err := k.checkDim(x); err != nil {
		return nil, err
	}
	out := make([]float64, k.Len())
	for j, xj := range k.x {
		out[j] = math.Tanh(k.gamma*floats.Dot(x, xj) + k.coef0)
	}

	return out, nil
}
