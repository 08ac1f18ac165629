// Package errs defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to failure handling with machine-readable
// error kinds and human-friendly messages, so callers can distinguish a dead
// network from a rejecting server or a body that did not parse, instead of
// seeing only a collapsed "it failed" outcome.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures
// appropriately.
package errs

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Transport indicates the request never produced an HTTP response
	// (DNS failure, refused connection, timeout).
	Transport Kind = "transport_failed"
	// UnexpectedStatus indicates the server answered with a non-success
	// HTTP status.
	UnexpectedStatus Kind = "unexpected_status"
	// MalformedResponse indicates a response body that could not be
	// decoded into the expected shape.
	MalformedResponse Kind = "malformed_response"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	// Status is the HTTP status code for UnexpectedStatus errors, zero otherwise.
	Status int
	Err    error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Status builds an UnexpectedStatus error carrying the HTTP status code.
func Status(code int, msg string) *E {
	return &E{Kind: UnexpectedStatus, Message: msg, Status: code}
}

// KindOf returns the kind of err, or the empty Kind when err carries none.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusOf returns the HTTP status code carried by err, or zero.
func StatusOf(err error) int {
	var e *E
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
