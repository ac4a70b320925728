package domain

import "fmt"

// ValidationError reports invalid caller input, such as a malformed email or
// a trial that was already consumed. It is surfaced to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// TransportError reports a failed or malformed remote completion exchange.
// It never escapes the response generator: the deterministic backend answers
// instead.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
