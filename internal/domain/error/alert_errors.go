package error

import "errors"

// Alert domain errors.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrInvalidAlertType is returned when the type is not one of budget,
	// bill or goal.
	ErrInvalidAlertType = errors.New("invalid alert type")
)

// Alert error codes.
const (
	ErrCodeAlertNotFound    Code = "ALT-010001"
	ErrCodeInvalidAlertType Code = "ALT-010002"
)
