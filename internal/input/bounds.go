package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bounds is an optional closed interval. A nil end is open.
type Bounds struct {
	Min *float64
	Max *float64
}

func Any() Bounds { return Bounds{} }

func AtLeast(lo float64) Bounds { return Bounds{Min: &lo} }

func Between(lo, hi float64) Bounds { return Bounds{Min: &lo, Max: &hi} }

func (b Bounds) Check(v float64) error {
	if b.Min != nil && v < *b.Min {
		return &RangeError{Value: v, Bound: *b.Min, Wrapped: ErrBelowMin}
	}
	if b.Max != nil && v > *b.Max {
		return &RangeError{Value: v, Bound: *b.Max, Wrapped: ErrAboveMax}
	}
	return nil
}

// Hint renders the interval for a prompt, e.g. "[>=0]".
func (b Bounds) Hint() string {
	switch {
	case b.Min != nil && b.Max != nil:
		return fmt.Sprintf("[%g..%g]", *b.Min, *b.Max)
	case b.Min != nil:
		return fmt.Sprintf("[>=%g]", *b.Min)
	case b.Max != nil:
		return fmt.Sprintf("[<=%g]", *b.Max)
	}
	return ""
}

// ParseFloat parses s and checks it against b. NaN and Inf are rejected as
// not a number.
func ParseFloat(s string, b Bounds) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, strings.TrimSpace(s))
	}
	if err := b.Check(v); err != nil {
		return 0, err
	}
	return v, nil
}
