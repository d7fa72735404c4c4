package error

import "errors"

// Recurring transaction domain errors.
var (
	// ErrRecurringTransactionNotFound is returned when a recurring
	// transaction is not found.
	ErrRecurringTransactionNotFound = errors.New("recurring transaction not found")

	// ErrInvalidFrequency is returned when the frequency is not one of
	// daily, weekly, monthly or yearly.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrEndBeforeStart is returned when an end date precedes a start date.
	ErrEndBeforeStart = errors.New("end date must not precede start date")
)

// Recurring transaction error codes.
const (
	ErrCodeRecurringTransactionNotFound Code = "RTX-010001"
	ErrCodeInvalidFrequency             Code = "RTX-010002"
	ErrCodeEndBeforeStart               Code = "RTX-010003"
)
