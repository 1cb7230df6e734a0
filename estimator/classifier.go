package estimator

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kvasirml/kridge/kernel"
	"github.com/kvasirml/kridge/labels"
	"github.com/kvasirml/kridge/ridge"
)

// Classifier is a one-vs-all kernel ridge classifier over integer
// labels. Fit solves the regularized system once per class against the
// same factorized matrix; predict scores every class with
// dot(alpha_class, similarity(x)) and returns the argmax label.
type Classifier struct {
	opts    options
	kern    kernel.Kernel
	alphas  *mat.Dense // num_classes × N, row j = coefficients of class j
	classes []int      // sorted label vocabulary; row j ↔ classes[j]
}

// NewClassifier builds an unfitted Classifier. An unknown kernel kind
// fails here with kernel.ErrUnsupportedKernel.
func NewClassifier(opts ...Option) (*Classifier, error) {
	o := gatherOptions(opts...)
	if !o.registry.Supports(o.kind) {
		return nil, kernel.ErrUnsupportedKernel
	}

	return &Classifier{opts: o}, nil
}

// Fit learns one coefficient vector per class from (X, y) and returns
// the receiver for chaining. The class ordering is sorted(unique(y))
// and is preserved identically for Predict.
func (c *Classifier) Fit(x [][]float64, y []int) (*Classifier, error) {
	if len(x) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(x) != len(y) {
		return nil, ErrSizeMismatch
	}

	kern, err := c.opts.registry.New(c.opts.kind, x, c.opts.gamma)
	if err != nil {
		return nil, err
	}

	var binarizer labels.Binarizer
	targets, err := binarizer.FitTransform(y)
	if err != nil {
		return nil, err
	}

	c.opts.progress.fire(StageKernelMatrix, 0, 1)
	similarity := kern.SimilarityMatrix()
	c.opts.progress.fire(StageKernelMatrix, 1, 1)

	system, err := ridge.NewSystem(similarity, c.opts.c)
	if err != nil {
		return nil, err
	}

	// One solve per class against the single factorization; result
	// column j holds the coefficients for the j-th sorted class.
	solved, err := system.SolveAll(targets)
	if err != nil {
		return nil, err
	}
	numClasses := len(binarizer.Classes())
	c.opts.progress.fire(StageSolve, numClasses, numClasses)

	// Store alpha as a fixed num_classes×N matrix, indexed by sorted
	// class rank.
	n := len(x)
	alphas := mat.NewDense(numClasses, n, nil)
	for j := 0; j < numClasses; j++ {
		for i := 0; i < n; i++ {
			alphas.Set(j, i, solved.At(i, j))
		}
	}

	c.kern = kern
	c.alphas = alphas
	c.classes = binarizer.Classes()

	return c, nil
}

// Predict returns one label per input sample, in input order. Each
// prediction is the class with the highest dot(alpha_class, s); on
// exact score ties the lowest sorted class index wins (first-occurrence
// max), making predictions deterministic.
// Returns ErrNotFitted before a successful Fit; every returned label
// belongs to the training vocabulary.
func (c *Classifier) Predict(x [][]float64) ([]int, error) {
	if c.kern == nil {
		return nil, ErrNotFitted
	}

	scores := make([]float64, len(c.classes))
	out := make([]int, len(x))
	for i, xi := range x {
		s, err := c.kern.Similarity(xi)
		if err != nil {
			return nil, err
		}
		for j := range c.classes {
			scores[j] = floats.Dot(c.alphas.RawRowView(j), s)
		}
		out[i] = c.classes[floats.MaxIdx(scores)]
		c.opts.progress.fire(StagePredict, i+1, len(x))
	}

	return out, nil
}

// Classes returns the sorted label vocabulary learned at fit, or nil
// before fit.
func (c *Classifier) Classes() []int { return c.classes }
