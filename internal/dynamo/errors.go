package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameters indicates parameters that cannot produce a run,
	// such as a t_max/dt ratio yielding no whole step.
	ErrInvalidParameters = errors.New("dynamo: invalid simulation parameters")

	// ErrInvalidNumericInput indicates text that does not parse as a float.
	ErrInvalidNumericInput = errors.New("dynamo: invalid numeric input")

	// ErrEmptyTrajectory indicates a renderer was handed no samples.
	ErrEmptyTrajectory = errors.New("dynamo: trajectory is empty")

	// ErrAborted indicates the user cancelled interactive input.
	ErrAborted = errors.New("dynamo: input aborted")
)

// ParamError reports a single offending parameter.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameters, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameters
}
