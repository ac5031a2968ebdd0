package assist

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for logging and HTTP status mapping.
// The client only ever sees the textual message.
type Kind string

const (
	KindInvalidPayload    Kind = "invalid_payload"
	KindUnknownTask       Kind = "unknown_task"
	KindConfiguration     Kind = "configuration"
	KindTransport         Kind = "transport"
	KindProvider          Kind = "provider"
	KindEmptyResponse     Kind = "empty_response"
	KindMalformedResponse Kind = "malformed_response"
	KindSchemaMismatch    Kind = "schema_mismatch"
)

// Error is the single error shape crossing the dispatcher boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// StatusHint maps the kind to an HTTP status: caller errors are 400,
// missing configuration is 500, upstream and parse failures are 502.
func (e *Error) StatusHint() int {
	switch e.Kind {
	case KindInvalidPayload, KindUnknownTask:
		return http.StatusBadRequest
	case KindConfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

// Errorf builds an Error with a formatted user-facing message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError keeps the cause for logging while exposing only msg.
func WrapError(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the kind of err, or empty when err is not an assist error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// StatusHint resolves the HTTP status for any error; unknown errors
// are treated as internal failures.
func StatusHint(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.StatusHint()
	}
	return http.StatusInternalServerError
}
