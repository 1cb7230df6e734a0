package kernel_test

import (
	"errors"
	"fmt"

	"github.com/kvasirml/kridge/kernel"
)

// ExampleRegistry_New builds an RBF kernel over a tiny 1-D training
// set and queries both operations: the cached pairwise matrix and a
// point-similarity vector.
func ExampleRegistry_New() {
	reg := kernel.NewRegistry()

	k, err := reg.New(kernel.RBF, [][]float64{{0}, {1}, {2}}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	m := k.SimilarityMatrix()
	fmt.Printf("K[0][1]=%.4f K[1][0]=%.4f\n", m.At(0, 1), m.At(1, 0))

	s, _ := k.Similarity([]float64{1})
	fmt.Printf("s=[%.4f %.4f %.4f]\n", s[0], s[1], s[2])
	// Output:
	// K[0][1]=0.3679 K[1][0]=0.3679
	// s=[0.3679 1.0000 0.3679]
}

// ExampleRegistry_New_unsupported shows the construction-time failure
// for a kernel name outside the registry.
func ExampleRegistry_New_unsupported() {
	reg := kernel.NewRegistry()

	_, err := reg.New("wavelet", [][]float64{{0}}, 1)
	fmt.Println(errors.Is(err, kernel.ErrUnsupportedKernel))
	// Output:
	// true
}
