// Package ridge builds and solves the regularized kernel system
//
//	(K + C·N·I)·alpha = y
//
// for dual coefficients alpha, where K is a symmetric N×N similarity
// matrix and C > 0 the ridge constant. Adding C·N to the diagonal
// makes any positive semi-definite K strictly positive definite, so
// the solve goes through a Cholesky factorization — the
// positive-definite-specialized path. A failed factorization is
// surfaced as ErrNotPositiveDefinite (a kernel or conditioning defect)
// instead of a silent NaN result.
//
// The factorization is computed once per System and reused across
// targets: one-vs-all classification solves every class against the
// same factorized matrix via SolveAll.
package ridge
