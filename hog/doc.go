// Package hog extracts histogram-of-oriented-gradients features from
// flattened grayscale images.
//
// The descriptor follows the classic cell/block scheme: per-pixel
// gradients by central differences, unsigned orientation (0–180°)
// binned into per-cell histograms weighted by gradient magnitude, then
// overlapping blocks of cells concatenated and L2-normalized.
//
// Transform is deterministic and side-effect-free: the same extractor
// yields the same features during fit and predict, which is what keeps
// a trained kernel model consistent across both phases.
package hog
