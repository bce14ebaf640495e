package regression_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/sartorproj/golinreg/regression"
)

// generateBenchmarkData builds a linear series with a small deterministic wobble.
func generateBenchmarkData(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		x := float64(i)
		y[i] = 0.5*x + 10 + math.Sin(x*0.01)
	}
	return y
}

func BenchmarkFit(b *testing.B) {
	sizes := []int{10, 1000, 100000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			y := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := regression.Fit(y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFitXY(b *testing.B) {
	sizes := []int{10, 1000, 100000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			y := generateBenchmarkData(size)
			x := make([]float64, size)
			for i := range x {
				x[i] = float64(i)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := regression.FitXY(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRSquared(b *testing.B) {
	actual := generateBenchmarkData(1000)
	predicted := make([]float64, len(actual))
	for i := range predicted {
		predicted[i] = 0.5*float64(i) + 10.1
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := regression.RSquared(actual, predicted); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	sizes := []int{10, 1000, 100000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			y := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := regression.Analyze(y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkForecast(b *testing.B) {
	line := regression.Line{Slope: 0.5, Intercept: 10}

	for i := 0; i < b.N; i++ {
		regression.Forecast(1000, 100, line)
	}
}
