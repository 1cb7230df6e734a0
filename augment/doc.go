// Package augment expands an image dataset with label-preserving
// transforms: horizontal flips and rotated replicas.
//
// Augment appends transformed copies after the originals, each copy
// carrying the label of its source sample, so the label vocabulary
// never changes. All randomness flows from one explicitly seeded
// source — identical inputs and seed yield an identical augmented
// dataset, which is what makes augmented training reproducible.
//
// Augmentation belongs to training only; prediction paths must never
// call into this package.
package augment
