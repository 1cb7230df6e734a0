package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasirml/kridge/estimator"
	"github.com/kvasirml/kridge/kernel"
)

// TestNewRegressor_UnknownKernel verifies the construction-time kernel
// check: a bad kernel name never reaches fit.
func TestNewRegressor_UnknownKernel(t *testing.T) {
	_, err := estimator.NewRegressor(estimator.WithKernel("wavelet"))
	assert.ErrorIs(t, err, kernel.ErrUnsupportedKernel)
}

// TestRegressor_FitValidation covers the shape sentinels.
func TestRegressor_FitValidation(t *testing.T) {
	reg, err := estimator.NewRegressor()
	require.NoError(t, err)

	_, err = reg.Fit(nil, nil)
	assert.ErrorIs(t, err, estimator.ErrEmptyDataset)

	_, err = reg.Fit([][]float64{{1}, {2}}, []float64{1})
	assert.ErrorIs(t, err, estimator.ErrSizeMismatch)
}

// TestRegressor_PredictBeforeFit verifies ErrNotFitted.
func TestRegressor_PredictBeforeFit(t *testing.T) {
	reg, err := estimator.NewRegressor()
	require.NoError(t, err)

	_, err = reg.Predict([][]float64{{1}})
	assert.ErrorIs(t, err, estimator.ErrNotFitted)
}

// TestRegressor_RoundTrip verifies the near-interpolation property:
// with C near zero, predicting the training points reproduces a
// deterministic y = f(x) within 1e-6.
func TestRegressor_RoundTrip(t *testing.T) {
	x := [][]float64{{0}, {1}, {2}, {3}}
	y := []float64{0, 1, 4, 9} // y = x²

	reg, err := estimator.NewRegressor(
		estimator.WithKernel(kernel.RBF),
		estimator.WithGamma(1),
		estimator.WithC(1e-9),
	)
	require.NoError(t, err)

	fitted, err := reg.Fit(x, y)
	require.NoError(t, err)
	assert.Same(t, reg, fitted, "Fit returns its receiver for chaining")
	assert.Len(t, reg.Alpha(), len(x), "one dual coefficient per training sample")

	preds, err := reg.Predict(x)
	require.NoError(t, err)
	require.Len(t, preds, len(y))
	for i := range y {
		assert.InDelta(t, y[i], preds[i], 1e-6, "training point %d", i)
	}
}

// TestRegressor_Deterministic verifies repeated fit+predict on
// identical inputs yields bit-identical outputs.
func TestRegressor_Deterministic(t *testing.T) {
	x := [][]float64{{0, 1}, {1, 0}, {2, 2}, {3, 1}, {1, 3}}
	y := []float64{1, -1, 2, 0, -2}

	run := func() []float64 {
		reg, err := estimator.NewRegressor(estimator.WithGamma(0.5), estimator.WithC(0.1))
		require.NoError(t, err)
		preds, err := reg.Fit(x, y)
		require.NoError(t, err)
		out, err := preds.Predict(x)
		require.NoError(t, err)

		return out
	}

	assert.Equal(t, run(), run())
}

// TestRegressor_PredictOrderAndDimCheck verifies output order follows
// input order and query-width mismatches surface the kernel sentinel.
func TestRegressor_PredictOrderAndDimCheck(t *testing.T) {
	x := [][]float64{{0}, {10}}
	y := []float64{-1, 1}

	reg, err := estimator.NewRegressor(estimator.WithGamma(1), estimator.WithC(1e-6))
	require.NoError(t, err)
	_, err = reg.Fit(x, y)
	require.NoError(t, err)

	preds, err := reg.Predict([][]float64{{10}, {0}})
	require.NoError(t, err)
	assert.InDelta(t, 1, preds[0], 1e-4)
	assert.InDelta(t, -1, preds[1], 1e-4)

	_, err = reg.Predict([][]float64{{1, 2}})
	assert.ErrorIs(t, err, kernel.ErrDimensionMismatch)
}

// TestRegressor_Progress verifies the callback observes the fit stages
// and one predict tick per sample, without altering results.
func TestRegressor_Progress(t *testing.T) {
	type tick struct {
		stage       estimator.Stage
		done, total int
	}
	var ticks []tick
	record := func(stage estimator.Stage, done, total int) {
		ticks = append(ticks, tick{stage, done, total})
	}

	x := [][]float64{{0}, {1}, {2}}
	reg, err := estimator.NewRegressor(estimator.WithProgress(record), estimator.WithC(0.5))
	require.NoError(t, err)
	_, err = reg.Fit(x, []float64{0, 1, 2})
	require.NoError(t, err)
	_, err = reg.Predict(x)
	require.NoError(t, err)

	require.Len(t, ticks, 2+1+3)
	assert.Equal(t, tick{estimator.StageKernelMatrix, 0, 1}, ticks[0])
	assert.Equal(t, tick{estimator.StageKernelMatrix, 1, 1}, ticks[1])
	assert.Equal(t, tick{estimator.StageSolve, 1, 1}, ticks[2])
	assert.Equal(t, tick{estimator.StagePredict, 3, 3}, ticks[5])
}

// TestOptionPanics verifies nonsensical hyperparameters panic at
// option-construction time.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { estimator.WithC(0) })
	assert.Panics(t, func() { estimator.WithC(-1) })
	assert.Panics(t, func() { estimator.WithRegistry(nil) })
	assert.Panics(t, func() { estimator.WithExtractor(nil) })
}
