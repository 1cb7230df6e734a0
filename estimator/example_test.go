package estimator_test

import (
	"errors"
	"fmt"

	"github.com/kvasirml/kridge/estimator"
	"github.com/kvasirml/kridge/kernel"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleClassifier
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four 1-D points, two well-separated classes:
//	  X = [[0], [1], [2], [3]]
//	  y = [0, 0, 1, 1]
//
// Options:
//   - Kernel = rbf, Gamma = 1 (similarity decays over unit distance)
//   - C = 0.01              (light regularization, near-interpolation)
//
// Effect:
//
//	Training points are recalled perfectly: one solve per class against
//	the single factorized (K + C·N·I), argmax over per-class scores.
//
// Complexity: O(N²·d) kernel matrix + O(N³) factorization.
func ExampleClassifier() {
	x := [][]float64{{0}, {1}, {2}, {3}}
	y := []int{0, 0, 1, 1}

	clf, err := estimator.NewClassifier(
		estimator.WithKernel(kernel.RBF),
		estimator.WithGamma(1),
		estimator.WithC(0.01),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	preds, err := clf.Fit(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	out, _ := preds.Predict(x)
	fmt.Println("classes:", clf.Classes())
	fmt.Println("preds:  ", out)
	// Output:
	// classes: [0 1]
	// preds:   [0 0 1 1]
}

// ExampleNewRegressor_unsupported shows that a kernel name outside the
// registry fails at construction, long before any data is touched.
func ExampleNewRegressor_unsupported() {
	_, err := estimator.NewRegressor(estimator.WithKernel("quantum"))
	fmt.Println(errors.Is(err, kernel.ErrUnsupportedKernel))
	// Output:
	// true
}
