package ridge

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// System is a factorized regularized kernel system. Create one with
// NewSystem, then call Solve (single target) or SolveAll (one target
// per class) any number of times; the Cholesky factorization is
// computed exactly once. A System is immutable after construction.
type System struct {
	chol mat.Cholesky
	n    int
}

// NewSystem forms A = K + c·N·I (K is not mutated) and factorizes it.
//
// Errors:
//   - ErrEmptySystem         — K has dimension 0.
//   - ErrBadRegularization   — c <= 0 or non-finite.
//   - ErrNotPositiveDefinite — Cholesky factorization failed.
//
// Complexity: O(N²) to form A, O(N³) to factorize.
func NewSystem(k *mat.SymDense, c float64) (*System, error) {
	if k == nil || k.SymmetricDim() == 0 {
		return nil, ErrEmptySystem
	}
	if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, ErrBadRegularization
	}

	n := k.SymmetricDim()
	a := mat.NewSymDense(n, nil)
	a.CopySym(k)
	shift := c * float64(n)
	for i := 0; i < n; i++ {
		a.SetSym(i, i, a.At(i, i)+shift)
	}

	s := &System{n: n}
	if ok := s.chol.Factorize(a); !ok {
		return nil, ErrNotPositiveDefinite
	}

	return s, nil
}

// Dim returns the system dimension N.
func (s *System) Dim() int { return s.n }

// Solve returns alpha satisfying (K + c·N·I)·alpha = y.
// Returns ErrDimensionMismatch when len(y) != Dim().
//
// Complexity: O(N²) — back-substitution against the cached factorization.
func (s *System) Solve(y []float64) ([]float64, error) {
	if len(y) != s.n {
		return nil, ErrDimensionMismatch
	}

	var alpha mat.VecDense
	if err := s.chol.SolveVecTo(&alpha, mat.NewVecDense(s.n, y)); err != nil {
		return nil, ErrNotPositiveDefinite
	}

	out := make([]float64, s.n)
	copy(out, alpha.RawVector().Data)

	return out, nil
}

// SolveAll solves the system for every column of Y at once, reusing
// the single factorization: column j of the result is the coefficient
// vector for target column j. This is the one-vs-all optimization —
// the regularized matrix is identical across class solves.
// Returns ErrDimensionMismatch when Y has a row count != Dim().
//
// Complexity: O(k·N²) for k target columns.
func (s *System) SolveAll(y mat.Matrix) (*mat.Dense, error) {
	r, _ := y.Dims()
	if r != s.n {
		return nil, ErrDimensionMismatch
	}

	var alphas mat.Dense
	if err := s.chol.SolveTo(&alphas, y); err != nil {
		return nil, ErrNotPositiveDefinite
	}

	return &alphas, nil
}
