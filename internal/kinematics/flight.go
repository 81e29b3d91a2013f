package kinematics

import (
	"math"
	"strconv"
)

// Flight is a time of flight that is either a finite number of seconds or
// unbounded (the object never reaches the ground).
type Flight struct {
	Value     float64
	Unbounded bool
}

func Finite(seconds float64) Flight {
	return Flight{Value: seconds}
}

func Unbounded() Flight {
	return Flight{Unbounded: true}
}

func (f Flight) IsFinite() bool {
	return !f.Unbounded
}

// Seconds returns the flight duration, +Inf when unbounded.
func (f Flight) Seconds() float64 {
	if f.Unbounded {
		return math.Inf(1)
	}
	return f.Value
}

// Or returns the duration, or fallback when unbounded.
func (f Flight) Or(fallback float64) float64 {
	if f.Unbounded {
		return fallback
	}
	return f.Value
}

func (f Flight) String() string {
	if f.Unbounded {
		return "unbounded"
	}
	return strconv.FormatFloat(f.Value, 'f', 2, 64) + "s"
}
