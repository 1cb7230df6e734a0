// Package labels encodes class labels into one-vs-all ±1 target
// matrices for multiclass ridge classification.
//
// The class ordering is always sorted(unique(y)); column i of the
// target matrix corresponds to the i-th sorted class. The same
// ordering must be used to map argmax indices back to labels at
// predict time — Binarizer.Classes is that single source of truth.
package labels

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Positive/negative target convention for one-vs-all encoding.
const (
	// PosLabel marks samples belonging to the column's class.
	PosLabel = 1.0

	// NegLabel marks samples of every other class.
	NegLabel = -1.0
)

// ErrNoLabels indicates FitTransform was called with no labels.
var ErrNoLabels = errors.New("labels: empty label set")

// Binarizer maps each distinct label to a one-vs-all ±1 target column.
// It is fitted once (FitTransform) and read-only thereafter.
type Binarizer struct {
	classes []int
	index   map[int]int
}

// FitTransform learns the sorted class vocabulary of y and returns the
// N×k target matrix: entry (i, j) is PosLabel when y[i] is the j-th
// sorted class, NegLabel otherwise. The matrix always has one column
// per class, including the two-class case, so every class gets its own
// independent one-vs-all target.
func (b *Binarizer) FitTransform(y []int) (*mat.Dense, error) {
	if len(y) == 0 {
		return nil, ErrNoLabels
	}

	// Sorted unique labels define the class ordering.
	seen := make(map[int]struct{}, len(y))
	for _, label := range y {
		seen[label] = struct{}{}
	}
	b.classes = make([]int, 0, len(seen))
	for label := range seen {
		b.classes = append(b.classes, label)
	}
	sort.Ints(b.classes)

	b.index = make(map[int]int, len(b.classes))
	for i, label := range b.classes {
		b.index[label] = i
	}

	targets := mat.NewDense(len(y), len(b.classes), nil)
	for i, label := range y {
		for j := range b.classes {
			targets.Set(i, j, NegLabel)
		}
		targets.Set(i, b.index[label], PosLabel)
	}

	return targets, nil
}

// Classes returns the fitted labels in ascending order. Index j in the
// returned slice corresponds to target column j. Nil before FitTransform.
func (b *Binarizer) Classes() []int { return b.classes }

// Index returns the column index of label, and whether the label was
// present in the fitted vocabulary.
func (b *Binarizer) Index(label int) (int, bool) {
	i, ok := b.index[label]

	return i, ok
}
