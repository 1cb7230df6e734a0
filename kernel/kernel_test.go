package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasirml/kridge/kernel"
)

// sampleSet is a small fixed training set shared across tests.
var sampleSet = [][]float64{
	{0, 0},
	{1, 0},
	{0, 2},
	{3, 1},
}

// TestRegistry_UnknownKind verifies that requesting an unregistered
// kernel fails with ErrUnsupportedKernel at construction time.
func TestRegistry_UnknownKind(t *testing.T) {
	reg := kernel.NewRegistry()

	_, err := reg.New("chebyshev", sampleSet, 1)
	assert.ErrorIs(t, err, kernel.ErrUnsupportedKernel, "unknown kind must fail at construction")
}

// TestRegistry_BuiltinsAndKinds verifies all built-ins construct and
// that Kinds returns a sorted listing.
func TestRegistry_BuiltinsAndKinds(t *testing.T) {
	reg := kernel.NewRegistry()

	for _, kind := range []kernel.Kind{kernel.RBF, kernel.Linear, kernel.Poly, kernel.Sigmoid} {
		assert.True(t, reg.Supports(kind), "built-in %q must be registered", kind)
		k, err := reg.New(kind, sampleSet, 1)
		require.NoError(t, err, "built-in %q must construct", kind)
		assert.Equal(t, len(sampleSet), k.Len())
		assert.Equal(t, 2, k.Dim())
	}

	assert.Equal(t,
		[]kernel.Kind{kernel.Linear, kernel.Poly, kernel.RBF, kernel.Sigmoid},
		reg.Kinds(), "Kinds must be sorted")
}

// TestRegistry_RegisterCustom verifies custom kernels can be plugged in
// and that nil registrations are rejected.
func TestRegistry_RegisterCustom(t *testing.T) {
	reg := kernel.NewRegistry()

	assert.ErrorIs(t, reg.Register("", kernel.NewRBF), kernel.ErrNilConstructor)
	assert.ErrorIs(t, reg.Register("custom", nil), kernel.ErrNilConstructor)

	require.NoError(t, reg.Register("custom", kernel.NewLinear))
	k, err := reg.New("custom", sampleSet, 0)
	require.NoError(t, err)
	assert.Equal(t, len(sampleSet), k.Len())
}

// TestSimilarityMatrix_Symmetry verifies K[i][j] == K[j][i] for every
// built-in kernel over the shared training set.
func TestSimilarityMatrix_Symmetry(t *testing.T) {
	reg := kernel.NewRegistry()

	for _, kind := range reg.Kinds() {
		k, err := reg.New(kind, sampleSet, 0.5)
		require.NoError(t, err, "kind %q", kind)

		m := k.SimilarityMatrix()
		n := m.SymmetricDim()
		require.Equal(t, len(sampleSet), n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equal(t, m.At(i, j), m.At(j, i), "kind %q entry (%d,%d)", kind, i, j)
			}
		}
	}
}

// TestSimilarityMatrix_Cached verifies the matrix is computed once and
// the same instance is returned afterwards.
func TestSimilarityMatrix_Cached(t *testing.T) {
	k, err := kernel.NewRBF(sampleSet, 1)
	require.NoError(t, err)

	first := k.SimilarityMatrix()
	second := k.SimilarityMatrix()
	assert.Same(t, first, second, "second call must return the cached matrix")
}

// TestRBF_Values checks the RBF formula against hand-computed entries.
func TestRBF_Values(t *testing.T) {
	k, err := kernel.NewRBF([][]float64{{0}, {1}, {3}}, 1)
	require.NoError(t, err)

	m := k.SimilarityMatrix()
	assert.InDelta(t, 1.0, m.At(0, 0), 1e-12, "self-similarity is exp(0)")
	assert.InDelta(t, math.Exp(-1), m.At(0, 1), 1e-12, "‖0−1‖²=1")
	assert.InDelta(t, math.Exp(-9), m.At(0, 2), 1e-12, "‖0−3‖²=9")
	assert.InDelta(t, math.Exp(-4), m.At(1, 2), 1e-12, "‖1−3‖²=4")

	s, err := k.Similarity([]float64{2})
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-4), s[0], 1e-12)
	assert.InDelta(t, math.Exp(-1), s[1], 1e-12)
	assert.InDelta(t, math.Exp(-1), s[2], 1e-12)
}

// TestLinear_Values checks the Gram matrix of the linear kernel.
func TestLinear_Values(t *testing.T) {
	k, err := kernel.NewLinear([][]float64{{1, 2}, {3, 4}}, 0)
	require.NoError(t, err)

	m := k.SimilarityMatrix()
	assert.Equal(t, 5.0, m.At(0, 0))
	assert.Equal(t, 11.0, m.At(0, 1))
	assert.Equal(t, 25.0, m.At(1, 1))

	s, err := k.Similarity([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, s)
}

// TestPoly_Values checks (gamma·x·y + 1)³ against hand computation.
func TestPoly_Values(t *testing.T) {
	k, err := kernel.NewPoly([][]float64{{1}, {2}}, 1)
	require.NoError(t, err)

	m := k.SimilarityMatrix()
	assert.InDelta(t, 8.0, m.At(0, 0), 1e-12, "(1·1+1)³")
	assert.InDelta(t, 27.0, m.At(0, 1), 1e-12, "(1·2+1)³")
	assert.InDelta(t, 125.0, m.At(1, 1), 1e-12, "(2·2+1)³")
}

// TestSigmoid_Values checks tanh(gamma·x·y + 1) against hand computation.
func TestSigmoid_Values(t *testing.T) {
	k, err := kernel.NewSigmoid([][]float64{{1}, {-1}}, 1)
	require.NoError(t, err)

	m := k.SimilarityMatrix()
	assert.InDelta(t, math.Tanh(2), m.At(0, 0), 1e-12)
	assert.InDelta(t, math.Tanh(0), m.At(0, 1), 1e-12)
}

// TestSimilarity_DimensionMismatch verifies a query of the wrong width
// fails with ErrDimensionMismatch.
func TestSimilarity_DimensionMismatch(t *testing.T) {
	k, err := kernel.NewRBF(sampleSet, 1)
	require.NoError(t, err)

	_, err = k.Similarity([]float64{1, 2, 3})
	assert.ErrorIs(t, err, kernel.ErrDimensionMismatch)
}

// TestConstruction_BadInputs covers empty, ragged and bad-gamma cases.
func TestConstruction_BadInputs(t *testing.T) {
	_, err := kernel.NewRBF(nil, 1)
	assert.ErrorIs(t, err, kernel.ErrEmptyTrainingSet, "nil training set")

	_, err = kernel.NewRBF([][]float64{{}}, 1)
	assert.ErrorIs(t, err, kernel.ErrEmptyTrainingSet, "zero-dimension sample")

	_, err = kernel.NewLinear([][]float64{{1, 2}, {1}}, 0)
	assert.ErrorIs(t, err, kernel.ErrDimensionMismatch, "ragged rows")

	_, err = kernel.NewRBF(sampleSet, 0)
	assert.ErrorIs(t, err, kernel.ErrBadGamma, "rbf gamma must be > 0")

	_, err = kernel.NewRBF(sampleSet, -2)
	assert.ErrorIs(t, err, kernel.ErrBadGamma, "rbf gamma must be > 0")

	_, err = kernel.NewPoly(sampleSet, math.NaN())
	assert.ErrorIs(t, err, kernel.ErrBadGamma, "NaN gamma rejected everywhere")
}
