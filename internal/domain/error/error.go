// Package error defines categorized domain errors for the bookkeeping
// application. Every failure that crosses a layer boundary is either a
// *DomainError with an explicit Kind, or an uncategorized error that the
// boundary layer reports as internal.
package error

import "errors"

// Kind classifies a domain error. Callers branch on Kind; the boundary layer
// maps it to an HTTP status.
type Kind string

const (
	// KindInvalid marks malformed or out-of-range input, detected before
	// any persistence attempt.
	KindInvalid Kind = "invalid"
	// KindNotFound marks a requested id or code with no matching row.
	KindNotFound Kind = "not_found"
	// KindConflict marks a uniqueness-constraint violation.
	KindConflict Kind = "conflict"
	// KindInternal marks any unanticipated failure. Its message never
	// carries internal detail.
	KindInternal Kind = "internal"
)

// Code is a stable error code in the RES-NNNNNN format.
type Code string

// API-level error codes not tied to a single resource.
const (
	// ErrCodeRateLimited marks a request rejected by the rate limiter.
	ErrCodeRateLimited Code = "API-010001"
)

// DomainError is a categorized failure with a caller-safe message.
type DomainError struct {
	Code    Code
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a DomainError with the given code, kind and message.
func New(code Code, kind Kind, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// NotFound creates a not-found DomainError.
func NotFound(code Code, message string, err error) *DomainError {
	return New(code, KindNotFound, message, err)
}

// Conflict creates a conflict DomainError.
func Conflict(code Code, message string, err error) *DomainError {
	return New(code, KindConflict, message, err)
}

// Invalid creates a validation DomainError.
func Invalid(code Code, message string, err error) *DomainError {
	return New(code, KindInvalid, message, err)
}

// KindOf returns the Kind of err, or KindInternal if err is not a
// categorized domain error.
func KindOf(err error) Kind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}
