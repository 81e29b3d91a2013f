package kinematics

import "errors"

var (
	// ErrNegativeGravity indicates a gravity below zero, which is not modeled.
	ErrNegativeGravity = errors.New("kinematics: gravity must be >= 0")

	// ErrNotFinite indicates a NaN or Inf input parameter.
	ErrNotFinite = errors.New("kinematics: parameter is NaN or Inf")

	// ErrUnknownBody indicates a body name with no registered gravity.
	ErrUnknownBody = errors.New("kinematics: unknown body")
)

// ParamError names the parameter that failed validation.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return e.Wrapped.Error() + " (" + e.Name + ")"
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
