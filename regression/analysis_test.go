package regression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/golinreg/regression"
	"github.com/sartorproj/golinreg/timeseries"
)

// TestAnalyze_PerfectSeries verifies the full pipeline on an exactly linear
// series: coefficients recovered, R² = 1, all error metrics zero.
func TestAnalyze_PerfectSeries(t *testing.T) {
	y := []float64{2, 4, 6, 8}

	result, err := regression.Analyze(y)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, result.Line.Slope, tolerance)
	assert.InDelta(t, 2.0, result.Line.Intercept, tolerance)
	assert.InDelta(t, 1.0, result.RSquared, tolerance)
	assert.InDelta(t, 0.0, result.MSE, tolerance)
	assert.InDelta(t, 0.0, result.RMSE, tolerance)
	assert.InDelta(t, 0.0, result.MAE, tolerance)

	require.Len(t, result.Fitted, len(y))
	for i, v := range y {
		assert.InDelta(t, v, result.Fitted[i], tolerance)
	}
}

// TestAnalyze_NoisySeries verifies the metric relationships on imperfect data.
func TestAnalyze_NoisySeries(t *testing.T) {
	y := []float64{100, 95, 130, 125, 160, 155, 190, 185, 220}

	result, err := regression.Analyze(y)
	require.NoError(t, err)

	assert.Greater(t, result.Line.Slope, 0.0)
	assert.Greater(t, result.RSquared, 0.0)
	assert.Less(t, result.RSquared, 1.0)
	assert.Greater(t, result.MSE, 0.0)
	assert.Greater(t, result.MAE, 0.0)
	assert.InDelta(t, math.Sqrt(result.MSE), result.RMSE, tolerance)
}

// TestAnalyze_EmptyInput verifies error propagation from the fitting step.
func TestAnalyze_EmptyInput(t *testing.T) {
	_, err := regression.Analyze([]float64{})
	assert.ErrorIs(t, err, regression.ErrEmptyInput)
}

// TestAnalyze_SinglePoint verifies that one observation cannot be analyzed.
func TestAnalyze_SinglePoint(t *testing.T) {
	_, err := regression.Analyze([]float64{42})
	assert.ErrorIs(t, err, regression.ErrInsufficientData)
}

// TestAnalyze_ConstantSeries verifies that a flat series has undefined R².
func TestAnalyze_ConstantSeries(t *testing.T) {
	_, err := regression.Analyze([]float64{5, 5, 5, 5})
	assert.ErrorIs(t, err, regression.ErrZeroVariance)
}

// TestAnalyzeSeries verifies the timeseries.Series convenience wrapper.
func TestAnalyzeSeries(t *testing.T) {
	s := timeseries.New([]float64{100, 120, 140, 160, 180, 200})

	result, err := regression.AnalyzeSeries(s)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, result.Line.Slope, tolerance)
	assert.InDelta(t, 100.0, result.Line.Intercept, tolerance)
	assert.InDelta(t, 1.0, result.RSquared, tolerance)
}

// TestResult_String verifies that the report names every metric.
func TestResult_String(t *testing.T) {
	result, err := regression.Analyze([]float64{2, 4, 6, 8})
	require.NoError(t, err)

	report := result.String()
	assert.Contains(t, report, "Slope:")
	assert.Contains(t, report, "Intercept:")
	assert.Contains(t, report, "R²:")
	assert.Contains(t, report, "MSE:")
	assert.Contains(t, report, "RMSE:")
	assert.Contains(t, report, "MAE:")
}
