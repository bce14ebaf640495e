package regression

import (
	"fmt"
	"math"
)

// MSE returns the mean squared error between actual and predicted values.
// The result is always ≥ 0 and is 0 exactly when the sequences are
// elementwise equal.
func MSE(actual, predicted []float64) (float64, error) {
	if err := validatePair(actual, predicted); err != nil {
		return 0, err
	}

	sum := 0.0
	for i := range actual {
		diff := actual[i] - predicted[i]
		sum += diff * diff
	}
	return sum / float64(len(actual)), nil
}

// RMSE returns the root mean squared error between actual and predicted
// values, in the same unit as the observations.
func RMSE(actual, predicted []float64) (float64, error) {
	mse, err := MSE(actual, predicted)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE returns the mean absolute error between actual and predicted values.
func MAE(actual, predicted []float64) (float64, error) {
	if err := validatePair(actual, predicted); err != nil {
		return 0, err
	}

	sum := 0.0
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual)), nil
}

// RSquared returns the coefficient of determination 1 − SSres/SStot.
//
// 1.0 is a perfect fit, 0.0 matches the mean baseline, and negative values
// mean the predictions are worse than the baseline — negative R² is a valid
// result, not an error. When the actual series is constant SStot is zero and
// R² is undefined, reported as ErrZeroVariance.
func RSquared(actual, predicted []float64) (float64, error) {
	if err := validatePair(actual, predicted); err != nil {
		return 0, err
	}

	meanActual := mean(actual)

	var ssTot, ssRes float64
	for i := range actual {
		dm := actual[i] - meanActual
		dr := actual[i] - predicted[i]
		ssTot += dm * dm
		ssRes += dr * dr
	}

	if ssTot < epsilon {
		return 0, fmt.Errorf("%w: actual values are constant at %v, R² undefined", ErrZeroVariance, actual[0])
	}

	return 1 - ssRes/ssTot, nil
}

// validatePair checks the shared preconditions of the metric functions:
// both sequences non-empty and of equal length.
func validatePair(actual, predicted []float64) error {
	if len(actual) == 0 || len(predicted) == 0 {
		return fmt.Errorf("%w: actual has %d values, predicted has %d", ErrEmptyInput, len(actual), len(predicted))
	}
	if len(actual) != len(predicted) {
		return fmt.Errorf("%w: actual has %d values, predicted has %d", ErrLengthMismatch, len(actual), len(predicted))
	}
	return nil
}
