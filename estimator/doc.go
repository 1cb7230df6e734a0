// Package estimator wires kernels, the ridge solver and the optional
// preprocessing steps into three fit/predict façades:
//
//   - Regressor            — kernel ridge regression, one real output.
//   - Classifier           — one-vs-all kernel ridge classification over
//     integer labels; prediction is the per-class argmax of
//     similarity-weighted scores.
//   - AugmentedClassifier  — Classifier preceded by dataset augmentation
//     (fit only) and HOG feature extraction (fit and predict).
//
// Lifecycle:
//
//	X, y ─▶ Fit ─▶ kernel matrix ─▶ (K + C·N·I) solve ─▶ alpha stored
//	    x ─▶ Predict ─▶ similarity(x) ─▶ dot(alpha, s) [─▶ argmax]
//
// All hyperparameters are fixed at construction through functional
// options; changing one means constructing a new estimator. Unknown
// kernel kinds fail at construction (kernel.ErrUnsupportedKernel),
// singular systems fail at fit (ridge.ErrNotPositiveDefinite), and
// predicting before fit fails with ErrNotFitted. Fit returns its
// receiver so calls chain: preds, err := est.Fit(X, y).Predict(X) is
// spelled out in the examples.
//
// Everything runs single-threaded and synchronously; an estimator owns
// its kernel and coefficients exclusively, so no locking is involved
// within one fit/predict lifecycle.
package estimator
