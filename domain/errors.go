package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrMissingField    = errors.New("missing required field")
	ErrBadValue        = errors.New("invalid field value")
	ErrUnknownCurrency = errors.New("unknown currency code")
)

// APIError is returned when the remote service answers with a non-200 status.
// Message carries the server-supplied message when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("api error (status=%d): %s", e.StatusCode, e.Message)
}

// ShapeError reports a response body whose structure does not match the
// expected wrapper layout: the wrapper key is absent or its value is not a
// mapping.
type ShapeError struct {
	Key string
}

func (e *ShapeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Invalid %s data in response", e.Key)
}

// FieldError wraps a model decode failure with the model and field that
// caused it.
type FieldError struct {
	Model string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: field %q: %v", e.Model, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
