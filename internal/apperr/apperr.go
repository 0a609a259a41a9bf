// Package apperr provides machine-readable error kinds shared by all modules.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable error category reported to callers.
type Kind string

// Error kinds.
const (
	KindUnauthorized             Kind = "UNAUTHORIZED"
	KindForbidden                Kind = "FORBIDDEN"
	KindNotFound                 Kind = "NOT_FOUND"
	KindInvalidRequest           Kind = "INVALID_REQUEST"
	KindAlreadyProcessed         Kind = "ALREADY_PROCESSED"
	KindAlreadyConfirmed         Kind = "ALREADY_CONFIRMED"
	KindCapacityExceeded         Kind = "CAPACITY_EXCEEDED"
	KindRegistrationClosed       Kind = "REGISTRATION_CLOSED"
	KindFixturesAlreadyGenerated Kind = "FIXTURES_ALREADY_GENERATED"
	KindInvalidScore             Kind = "INVALID_SCORE"
	KindDrawRequiresAdmin        Kind = "DRAW_REQUIRES_ADMIN"
	KindNotAWinningScore         Kind = "NOT_A_WINNING_SCORE"
	KindTransientFailure         Kind = "TRANSIENT_FAILURE"
	KindInternal                 Kind = "INTERNAL_ERROR"
)

// Error is an error tagged with a Kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates a new sentinel error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Transient wraps a storage-layer failure so callers can decide to retry.
// A nil error stays nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return &Error{Kind: KindTransientFailure, Message: "storage failure", Err: err}
}

// KindOf reports the kind of err. Untagged errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the public message for err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// HTTPStatus maps a kind to its HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidRequest, KindInvalidScore, KindDrawRequiresAdmin, KindNotAWinningScore:
		return http.StatusBadRequest
	case KindAlreadyProcessed, KindAlreadyConfirmed, KindCapacityExceeded,
		KindRegistrationClosed, KindFixturesAlreadyGenerated:
		return http.StatusConflict
	case KindTransientFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
