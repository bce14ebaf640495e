package regression

import (
	"fmt"
	"strings"

	"github.com/sartorproj/golinreg/timeseries"
)

// Result holds the outcome of a full regression analysis: the fitted line,
// its goodness-of-fit metrics, and the fitted values at each input index.
type Result struct {
	Line     Line
	RSquared float64
	MSE      float64
	RMSE     float64
	MAE      float64
	// Fitted holds the line evaluated at the input indices 0..n-1.
	Fitted []float64
}

// String returns a multi-line report of the analysis.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Slope:     %.6f\n", r.Line.Slope)
	fmt.Fprintf(&b, "Intercept: %.6f\n", r.Line.Intercept)
	fmt.Fprintf(&b, "R²:        %.6f\n", r.RSquared)
	fmt.Fprintf(&b, "MSE:       %.6f\n", r.MSE)
	fmt.Fprintf(&b, "RMSE:      %.6f\n", r.RMSE)
	fmt.Fprintf(&b, "MAE:       %.6f", r.MAE)
	return b.String()
}

// Analyze fits a line to the series against its implicit index and evaluates
// the fit, returning the line, the fitted values, and R²/MSE/RMSE/MAE in one
// pass. It fails with the same errors as Fit, plus ErrZeroVariance when the
// series is constant (R² undefined).
func Analyze(y []float64) (*Result, error) {
	line, err := Fit(y)
	if err != nil {
		return nil, err
	}

	fitted := make([]float64, len(y))
	for i := range fitted {
		fitted[i] = line.At(float64(i))
	}

	r2, err := RSquared(y, fitted)
	if err != nil {
		return nil, err
	}
	mse, err := MSE(y, fitted)
	if err != nil {
		return nil, err
	}
	rmse, err := RMSE(y, fitted)
	if err != nil {
		return nil, err
	}
	mae, err := MAE(y, fitted)
	if err != nil {
		return nil, err
	}

	return &Result{
		Line:     line,
		RSquared: r2,
		MSE:      mse,
		RMSE:     rmse,
		MAE:      mae,
		Fitted:   fitted,
	}, nil
}

// AnalyzeSeries runs Analyze over the values of a series.
func AnalyzeSeries(s *timeseries.Series) (*Result, error) {
	return Analyze(s.Values)
}
