package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrNoTrades       = errors.New("trade list is empty")
	ErrMissingColumns = errors.New("required columns missing")
	ErrNoRoundTrips   = errors.New("no round-trip trades could be extracted")
)

// InvalidInputError reports a request parameter that failed validation,
// including the observed value so the caller can correct it.
type InvalidInputError struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s = %v (%s)", e.Param, e.Value, e.Reason)
}

// ResourceLimitError reports a simulation request whose ensemble would
// exceed the configured memory limit. Raised before any allocation.
type ResourceLimitError struct {
	RequestedElements int
	MaxElements       int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("simulation ensemble too large: %d elements requested, limit is %d (reduce n_simulations or trade count)",
		e.RequestedElements, e.MaxElements)
}
