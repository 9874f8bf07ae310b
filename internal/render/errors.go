package render

import "errors"

var (
	// ErrEmptyField indicates a space-time field with no rows or no cells.
	ErrEmptyField = errors.New("render: space-time field must hold at least one non-empty row")
	// ErrRaggedField indicates field rows of differing lengths.
	ErrRaggedField = errors.New("render: space-time field rows must share one length")
	// ErrUnknownPalette indicates a palette name with no registration.
	ErrUnknownPalette = errors.New("render: unknown palette")
	// ErrInvalidPalette indicates a palette without one color per state.
	ErrInvalidPalette = errors.New("render: palette must provide one color per cell state")
	// ErrInvalidOrigin indicates an origin other than lower or upper.
	ErrInvalidOrigin = errors.New(`render: origin must be "lower" or "upper"`)
)
