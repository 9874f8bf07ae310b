package trinary

import "errors"

var (
	// ErrInvalidRuleNumber indicates a rule number outside [0, MaxRuleNumber].
	ErrInvalidRuleNumber = errors.New("trinary: rule number must be between 0 and 19682")
	// ErrMalformedDigits indicates a trinary digit string of the wrong length
	// or with characters outside '0'..'2'.
	ErrMalformedDigits = errors.New("trinary: malformed trinary digit string")
	// ErrInvalidStepCount indicates a negative evolution step count.
	ErrInvalidStepCount = errors.New("trinary: time steps must be a non-negative integer")
	// ErrInvalidCellState indicates a configuration cell outside {0, 1, 2}.
	ErrInvalidCellState = errors.New("trinary: configuration cells must be 0, 1 or 2")
	// ErrEmptyConfiguration indicates an evolution request with no cells.
	ErrEmptyConfiguration = errors.New("trinary: configuration must hold at least one cell")
	// ErrInvalidLength indicates an invalid configuration length request.
	ErrInvalidLength = errors.New("trinary: invalid configuration length")
)
