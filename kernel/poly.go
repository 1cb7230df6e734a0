package kernel

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// polyKernel is the polynomial kernel
//
//	k(x, y) = (gamma·x·y + coef0)^degree
//
// with degree = DefaultPolyDegree and coef0 = DefaultCoef0.
type polyKernel struct {
	training
	gamma  float64
	degree int
	coef0  float64
}

// NewPoly constructs a polynomial kernel over X with scale gamma.
func NewPoly(x [][]float64, gamma float64) (Kernel, error) {
	if err := checkGamma(gamma); err != nil {
		return nil, err
	}
	t, err := newTraining(x)
	if err != nil {
		return nil, err
	}

	return &polyKernel{
		training: t,
		gamma:    gamma,
		degree:   DefaultPolyDegree,
		coef0:    DefaultCoef0,
	}, nil
}

// SimilarityMatrix returns the cached N×N polynomial similarity matrix.
func (k *polyKernel) SimilarityMatrix() *mat.SymDense {
	return k.matrix(func(i, j int) float64 {
		return powi(k.gamma*floats.Dot(k.x[i], k.x[j])+k.coef0, k.degree)
	})
}

// Similarity returns (gamma·x·x_j + coef0)^degree for every training sample j.
func (k *polyKernel) Similarity(x []float64) ([]float64, error) {
	if err := k.checkDim(x); err != nil {
		return nil, err
	}
	out := make([]float64, k.Len())
	for j, xj := range k.x {
		out[j] = powi(k.gamma*floats.Dot(x, xj)+k.coef0, k.degree)
	}

	return out, nil
}

// powi raises base to a non-negative integer power by repeated
// squaring. Exact for small integer exponents, unlike math.Pow.
func powi(base float64, times int) float64 {
	tmp, ret := base, 1.0
	for t := times; t > 0; t /= 2 {
		if t%2 == 1 {
			ret *= tmp
		}
		tmp *= tmp
	}

	return ret
}
