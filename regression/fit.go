package regression

import (
	"fmt"

	"github.com/sartorproj/golinreg/timeseries"
)

// epsilon is the double-precision machine epsilon, used to detect
// sums of squares that are zero up to rounding.
const epsilon = 2.220446049250313e-16

// Fit computes the least-squares line through a time series, using the
// positions 0, 1, ..., n-1 as the implicit X values.
//
// It returns ErrEmptyInput for an empty series and ErrInsufficientData for
// a single observation. With n ≥ 2 the index variance is always positive,
// so this path cannot hit ErrZeroVariance.
func Fit(y []float64) (Line, error) {
	if len(y) == 0 {
		return Line{}, fmt.Errorf("%w: series has no observations", ErrEmptyInput)
	}
	if len(y) < 2 {
		return Line{}, fmt.Errorf("%w: need at least 2 observations, got %d", ErrInsufficientData, len(y))
	}

	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}

	return FitXY(x, y)
}

// FitXY computes the least-squares line through the points (x[i], y[i]).
//
// Both slices must be non-empty, of equal length, and hold at least two
// points; x must not be constant, since the slope is undefined when all X
// values coincide.
func FitXY(x, y []float64) (Line, error) {
	if len(x) == 0 || len(y) == 0 {
		return Line{}, fmt.Errorf("%w: x has %d values, y has %d", ErrEmptyInput, len(x), len(y))
	}
	if len(x) != len(y) {
		return Line{}, fmt.Errorf("%w: x has %d values, y has %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Line{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInsufficientData, len(x))
	}

	meanX := mean(x)
	meanY := mean(y)

	// Mean-centered covariance over variance.
	var sumXY, sumXX float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sumXY += dx * dy
		sumXX += dx * dx
	}

	if sumXX < epsilon {
		return Line{}, fmt.Errorf("%w: all x values equal %v", ErrZeroVariance, x[0])
	}

	slope := sumXY / sumXX
	return Line{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}

// FitSeries fits a line to the values of a series against their positions.
func FitSeries(s *timeseries.Series) (Line, error) {
	return Fit(s.Values)
}

// mean returns the arithmetic mean of values. Callers guarantee non-empty input.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
