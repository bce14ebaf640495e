package regression

import "fmt"

// Line is a fitted regression line y = Slope·x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Predict evaluates the line at each of the given x values.
func (l Line) Predict(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = l.At(x)
	}
	return out
}

// Forecast projects the line onto the indices start, start+1, ...,
// start+count-1. See the package-level Forecast function.
func (l Line) Forecast(start, count int) []float64 {
	return Forecast(start, count, l)
}

// String returns the line in equation form.
func (l Line) String() string {
	return fmt.Sprintf("y = %.6fx + %.6f", l.Slope, l.Intercept)
}

// Forecast produces count future values from a fitted line, where element i
// is the line evaluated at index start+i. A count of zero yields an empty
// sequence; there are no failure cases.
func Forecast(start, count int, line Line) []float64 {
	if count < 0 {
		count = 0
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = line.At(float64(start + i))
	}
	return out
}
