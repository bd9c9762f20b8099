package oscillator

import "errors"

// Domain errors for model construction and coordinate transforms.
var (
	// ErrInvalidParameter indicates a non-positive physical or grid parameter.
	ErrInvalidParameter = errors.New("oscillator: invalid parameter")

	// ErrDivisionByZero indicates a degenerate L*C product in a derivative
	// or coordinate transform computation.
	ErrDivisionByZero = errors.New("oscillator: division by zero (L*C is zero)")
)
