package qlog

import (
	"errors"
	"fmt"
)

// ErrReinitialized is reported through the writer's diagnostic channel
// when LogFileDetails is called more than once and the writer was
// configured with ReinitError.
var ErrReinitialized = errors.New("trace header already written")

// ConfigError reports header metadata that cannot form a valid trace
// header. It is surfaced at initialization time only; the writer falls
// back to inactive rather than propagating it to the protocol stack.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid trace configuration: %s: %s", e.Field, e.Reason)
}

// EncodingError reports a single record that could not be serialized, for
// example a payload containing a non-finite number. The record is dropped;
// the writer stays active.
type EncodingError struct {
	Name string // wire name of the dropped record, empty for the header
	Err  error
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("cannot encode record: %v", e.Err)
	}
	return fmt.Sprintf("cannot encode %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying serialization error.
func (e *EncodingError) Unwrap() error { return e.Err }
