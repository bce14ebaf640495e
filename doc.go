// Package golinreg provides ordinary least-squares linear regression for time series.
//
// GoLinReg is a small Go package for fitting straight lines to time series
// and point-cloud data, evaluating the fit, and projecting future values.
// Every operation is a pure function over in-memory float64 slices: there is
// no hidden state, no I/O, and no concurrency inside the library, so all
// functions are safe to call from any number of goroutines.
//
// # Features
//
//   - Index-based fitting for time series (position 0..n-1 as the X axis)
//   - General two-variable fitting over arbitrary (x, y) point clouds
//   - Goodness-of-fit metrics: R², MSE, RMSE, MAE
//   - Forecasting future values from a fitted line
//   - Descriptive statistics for series (mean, median, variance, min/max)
//
// # Quick Start
//
// Fit a line to a time series and forecast the next periods:
//
//	vendas := []float64{100, 120, 140, 160, 180, 200}
//	line, _ := regression.Fit(vendas)
//	next := line.Forecast(len(vendas), 3) // [220 240 260]
//
// Run a full analysis with metrics in one call:
//
//	result, _ := regression.Analyze(vendas)
//	fmt.Println(result) // slope, intercept, R², MSE, RMSE, MAE
//
// # Packages
//
// The library is organized into the following packages:
//
//   - regression: Fitting, metrics, and forecasting
//   - timeseries: Series container and descriptive statistics
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package golinreg
