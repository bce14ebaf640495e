// Package main demonstrates linear regression analysis over sample time series.
package main

import (
	"fmt"
	"strings"

	"github.com/sartorproj/golinreg/regression"
	"github.com/sartorproj/golinreg/timeseries"
)

// Dataset defines a time series dataset to analyze
type Dataset struct {
	Name    string // Display name
	Unit    string // Unit of the observations
	Values  []float64
	Horizon int // Number of future periods to forecast
}

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoLinReg Demonstration - Least-Squares Trend Analysis")
	fmt.Println(strings.Repeat("=", 80))

	datasets := []Dataset{
		{Name: "Monthly Sales", Unit: "units", Values: []float64{100, 120, 140, 160, 180, 200}, Horizon: 3},
		{Name: "City Population", Unit: "thousands", Values: []float64{50.0, 52.5, 55.2, 57.8, 60.5, 63.1, 65.8, 68.2}, Horizon: 5},
		{Name: "Daytime Temperature", Unit: "°C", Values: []float64{15.0, 18.2, 22.5, 26.8, 30.1, 32.5, 29.8, 25.2}, Horizon: 3},
		{Name: "Noisy Sales", Unit: "units", Values: []float64{100, 95, 130, 125, 160, 155, 190, 185, 220}, Horizon: 3},
	}

	for _, ds := range datasets {
		analyzeDataset(ds)
	}

	analyzeXY()
}

func analyzeDataset(ds Dataset) {
	fmt.Printf("\n%s\n", strings.Repeat("-", 80))
	fmt.Printf("Dataset: %s\n", ds.Name)
	fmt.Printf("Observations: %v\n", ds.Values)

	series := timeseries.New(ds.Values)
	series.Name = ds.Name

	summary, err := series.Describe()
	if err != nil {
		fmt.Printf("Failed to describe series: %v\n", err)
		return
	}
	fmt.Println("\nDescriptive statistics:")
	fmt.Println(indent(summary.String()))

	result, err := regression.AnalyzeSeries(series)
	if err != nil {
		fmt.Printf("Regression failed: %v\n", err)
		return
	}

	fmt.Println("\nRegression analysis:")
	fmt.Printf("  Equation: %s\n", result.Line)
	fmt.Println(indent(result.String()))

	fmt.Println("\nActual vs fitted:")
	for i, actual := range ds.Values {
		fitted := result.Fitted[i]
		fmt.Printf("  Period %d: actual=%.2f fitted=%.2f residual=%+.2f\n", i, actual, fitted, actual-fitted)
	}

	fmt.Printf("\nForecast for the next %d periods:\n", ds.Horizon)
	future := result.Line.Forecast(series.Len(), ds.Horizon)
	for i, v := range future {
		fmt.Printf("  Period %d: %.2f %s\n", series.Len()+i, v, ds.Unit)
	}

	fmt.Printf("\nTrend: %s\n", trendLabel(result.Line.Slope, ds.Unit))
}

// analyzeXY demonstrates the general two-variable fit on study hours vs grade.
func analyzeXY() {
	fmt.Printf("\n%s\n", strings.Repeat("-", 80))
	fmt.Println("Dataset: Study Hours vs Grade (explicit x values)")

	hours := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	grades := []float64{5.2, 6.1, 6.8, 7.5, 8.1, 8.7, 9.2, 9.5}
	fmt.Printf("Hours:  %v\n", hours)
	fmt.Printf("Grades: %v\n", grades)

	line, err := regression.FitXY(hours, grades)
	if err != nil {
		fmt.Printf("Regression failed: %v\n", err)
		return
	}
	fmt.Printf("\nEquation: %s\n", line)

	predicted := line.Predict(hours)
	if r2, err := regression.RSquared(grades, predicted); err == nil {
		fmt.Printf("R²: %.4f\n", r2)
	}
	if rmse, err := regression.RMSE(grades, predicted); err == nil {
		fmt.Printf("RMSE: %.4f\n", rmse)
	}

	fmt.Printf("\nEach extra hour of study is worth %+.2f grade points.\n", line.Slope)
	fmt.Printf("Predicted grade after 10 hours: %.2f\n", line.At(10))
}

func trendLabel(slope float64, unit string) string {
	switch {
	case slope > 0.1:
		return fmt.Sprintf("RISING (%+.2f %s per period)", slope, unit)
	case slope < -0.1:
		return fmt.Sprintf("FALLING (%+.2f %s per period)", slope, unit)
	default:
		return "FLAT (minimal change per period)"
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
