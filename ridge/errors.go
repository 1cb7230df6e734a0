// Package ridge: sentinel error set. Callers match via errors.Is.

package ridge

import "errors"

var (
	// ErrNotPositiveDefinite is returned when Cholesky factorization of
	// K + C·N·I fails — the system is singular or ill-conditioned
	// (degenerate/duplicate samples, near-zero C, or a kernel that is
	// not positive semi-definite).
	ErrNotPositiveDefinite = errors.New("ridge: system is not positive definite")

	// ErrBadRegularization indicates C <= 0 or non-finite. Strictly
	// positive C is what guarantees the diagonal dominance the
	// positive-definite solve relies on.
	ErrBadRegularization = errors.New("ridge: regularization constant must be > 0")

	// ErrEmptySystem indicates a zero-dimension kernel matrix.
	ErrEmptySystem = errors.New("ridge: empty system")

	// ErrDimensionMismatch indicates a target whose length (or row
	// count) differs from the system dimension N.
	ErrDimensionMismatch = errors.New("ridge: target dimension mismatch")
)
