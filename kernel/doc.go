// Package kernel defines similarity functions over feature vectors and
// the pairwise-similarity matrices built from them.
//
// A Kernel owns a fixed training set and exposes exactly two
// operations:
//
//   - SimilarityMatrix() — the symmetric N×N matrix of pairwise
//     similarities over the training set, computed once and cached
//     (it dominates fit cost at O(N²·d)).
//   - Similarity(x)      — the length-N vector of similarities between
//     one new sample and every training sample, using the same formula
//     and the same scale parameter.
//
// Concrete kernels (grounded in the libsvm formulation):
//
//	rbf:     exp(-gamma·‖x−y‖²)
//	linear:  x·y
//	poly:    (gamma·x·y + coef0)^degree
//	sigmoid: tanh(gamma·x·y + coef0)
//
// Kernels are selected by Kind through an explicit Registry value —
// there is no package-global lookup. Requesting an unknown Kind fails
// with ErrUnsupportedKernel at construction time, never at fit time.
package kernel
