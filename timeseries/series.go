package timeseries

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrEmptySeries indicates a statistic was requested over a series with no
// observations.
var ErrEmptySeries = errors.New("timeseries: empty series")

// Series represents an ordered sequence of observations. Position carries
// the ordering: Values[i] is the observation at period i.
type Series struct {
	Name   string
	Values []float64
}

// New creates a series from values.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the population variance of the series (divided by n,
// not n−1).
func (s *Series) Variance() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values))
}

// Std calculates the population standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Slice returns a copy of the series from start to end (exclusive), with
// out-of-range bounds clamped.
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name, Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{
		Name:   s.Name,
		Values: values,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Name:   s.Name,
		Values: values,
	}
}

// Summary holds descriptive statistics of a series.
type Summary struct {
	Mean     float64
	Median   float64
	Variance float64
	Std      float64
	Min      float64
	Max      float64
	Range    float64
}

// String returns a multi-line report of the summary.
func (d Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mean:     %.6f\n", d.Mean)
	fmt.Fprintf(&b, "Median:   %.6f\n", d.Median)
	fmt.Fprintf(&b, "Variance: %.6f\n", d.Variance)
	fmt.Fprintf(&b, "Std:      %.6f\n", d.Std)
	fmt.Fprintf(&b, "Min:      %.6f\n", d.Min)
	fmt.Fprintf(&b, "Max:      %.6f\n", d.Max)
	fmt.Fprintf(&b, "Range:    %.6f", d.Range)
	return b.String()
}

// Describe computes all descriptive statistics of the series in one call.
// It fails with ErrEmptySeries when the series has no observations.
func (s *Series) Describe() (Summary, error) {
	if len(s.Values) == 0 {
		return Summary{}, fmt.Errorf("%w: cannot describe %q", ErrEmptySeries, s.Name)
	}

	min := s.Min()
	max := s.Max()
	variance := s.Variance()

	return Summary{
		Mean:     s.Mean(),
		Median:   s.Median(),
		Variance: variance,
		Std:      math.Sqrt(variance),
		Min:      min,
		Max:      max,
		Range:    max - min,
	}, nil
}
