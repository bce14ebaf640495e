// Package regression implements ordinary least-squares linear regression.
//
// The package exposes four groups of pure functions: fitting, metric
// computation, forecasting, and a combined analysis that chains the three.
// All of them operate on plain float64 slices, validate their inputs up
// front, and return one of the package's sentinel errors instead of
// producing NaN or Inf on degenerate data.
//
// # Fitting
//
// Fit a time series against its implicit index, or two arbitrary variables:
//
//	line, err := regression.Fit(values)        // x = 0, 1, 2, ...
//	line, err := regression.FitXY(xs, ys)      // explicit x values
//
// The result is a Line with Slope and Intercept describing
// y = Slope·x + Intercept.
//
// # Metrics
//
// Compare actual values against predictions from any model:
//
//	r2, err := regression.RSquared(actual, predicted)
//	mse, err := regression.MSE(actual, predicted)
//	mae, err := regression.MAE(actual, predicted)
//
// R² may legitimately be negative when the fit is worse than the mean
// baseline; that is a valid result, not an error.
//
// # Forecasting
//
// Project a fitted line onto future indices:
//
//	future := regression.Forecast(len(values), 3, line)
//
// # Errors
//
// Validation failures are reported through a closed set of sentinel errors
// (ErrEmptyInput, ErrInsufficientData, ErrLengthMismatch, ErrZeroVariance),
// each wrapped with the concrete lengths or the degenerate input involved.
// Match them with errors.Is.
package regression
