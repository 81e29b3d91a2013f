package input

import (
	"errors"
	"fmt"
)

var (
	// ErrNotNumber indicates input that does not parse as a number.
	ErrNotNumber = errors.New("input: not a valid number")

	// ErrBelowMin indicates a value below the configured lower bound.
	ErrBelowMin = errors.New("input: value below minimum")

	// ErrAboveMax indicates a value above the configured upper bound.
	ErrAboveMax = errors.New("input: value above maximum")

	// ErrInvalidChoice indicates a menu selection outside the offered options.
	ErrInvalidChoice = errors.New("input: invalid selection")
)

// RangeError carries the bound a value violated.
type RangeError struct {
	Value   float64
	Bound   float64
	Wrapped error
}

func (e *RangeError) Error() string {
	if errors.Is(e.Wrapped, ErrBelowMin) {
		return fmt.Sprintf("value must be >= %g", e.Bound)
	}
	return fmt.Sprintf("value must be <= %g", e.Bound)
}

func (e *RangeError) Unwrap() error {
	return e.Wrapped
}
