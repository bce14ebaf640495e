package regression

import "errors"

// Every validation failure in this package wraps one of the sentinel errors
// below, with the offending lengths or input attached. Callers match with
// errors.Is; the set is closed.
var (
	// ErrEmptyInput indicates an input sequence with no observations.
	ErrEmptyInput = errors.New("regression: empty input")

	// ErrInsufficientData indicates too few observations to fit a line.
	ErrInsufficientData = errors.New("regression: insufficient data")

	// ErrLengthMismatch indicates two paired sequences of different lengths.
	ErrLengthMismatch = errors.New("regression: length mismatch")

	// ErrZeroVariance indicates a degenerate sequence with no variance,
	// making the slope or R² undefined.
	ErrZeroVariance = errors.New("regression: zero variance")
)
