// Package timeseries provides a series container and descriptive statistics.
//
// A Series wraps an ordered sequence of float64 observations where position
// carries the time ordering. The package computes summary statistics only;
// fitting and forecasting live in the regression package.
//
//	s := timeseries.New([]float64{100, 120, 140, 160})
//	fmt.Println(s.Mean(), s.Std())
//
//	summary, err := s.Describe()
package timeseries
