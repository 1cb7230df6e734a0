// Package kridge is an in-memory toolkit for kernel ridge regression
// and classification over image-like data — closed-form solves, no
// iterative optimization.
//
// 🚀 What is kridge?
//
//	A small, deterministic library that brings together:
//		• Kernels: RBF, linear, polynomial, sigmoid behind one interface
//		• Ridge solve: Cholesky-factorized (K + C·N·I)·alpha = y
//		• Estimators: Regressor, Classifier (one-vs-all), AugmentedClassifier
//		• Preprocessing: HOG feature extraction & label-preserving augmentation
//
// ✨ Why choose kridge?
//
//   - Closed-form – one positive-definite solve, no learning-rate knobs
//   - Fail-fast – sentinel errors for bad kernels, singular systems, shape bugs
//   - Pure Go – dense linear algebra via gonum, no cgo, no hidden deps
//   - Deterministic – explicit registries, seeded augmentation, documented tie-breaks
//
// Under the hood, everything is organized under six subpackages:
//
//	kernel/    — similarity functions, pairwise matrices, explicit registry
//	ridge/     — regularized positive-definite system and its solves
//	labels/    — one-vs-all ±1 binarization with sorted class ordering
//	hog/       — histogram-of-oriented-gradients feature extraction
//	augment/   — horizontal flips and rotated replicas (training-only)
//	estimator/ — fit/predict façades wiring the pieces together
//
// Typical flow:
//
//	X, y ──▶ estimator.Fit ──▶ kernel matrix ──▶ ridge solve ──▶ alpha
//	                x ──▶ similarity(x) ──▶ dot(alpha, s) ──▶ prediction
//
// Dive into the package docs and examples/ for full walkthroughs.
//
//	go get github.com/kvasirml/kridge
package kridge
