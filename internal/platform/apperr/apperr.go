// Package apperr defines the error kinds surfaced by the pharmacy API and
// their mapping onto HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for API callers.
type Kind string

const (
	KindNotFound            Kind = "NotFound"
	KindValidation          Kind = "Validation"
	KindInvalidStatus       Kind = "InvalidStatus"
	KindConstraintViolation Kind = "ConstraintViolation"
	KindTransactionFailure  Kind = "TransactionFailure"
	KindInternal            Kind = "Internal"
)

// Error is a classified application error. Msg is safe to return to the
// client; Err carries the underlying cause and is only logged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies err under kind with a client-facing message.
func Wrap(err error, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

func InvalidStatus(format string, args ...any) *Error {
	return New(KindInvalidStatus, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(KindConstraintViolation, format, args...)
}

// TxFailure classifies a failure to begin or commit a transaction.
func TxFailure(err error, format string, args ...any) *Error {
	return Wrap(err, KindTransactionFailure, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the client-facing message for err. Unclassified errors
// never leak their text.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal server error"
}

// HTTPStatus maps a kind onto the response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindInvalidStatus:
		return http.StatusBadRequest
	case KindConstraintViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
