package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the type is neither income
	// nor expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNegativeAmount is returned when a monetary amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Transaction error codes.
const (
	ErrCodeTransactionNotFound    Code = "TXN-010001"
	ErrCodeInvalidTransactionType Code = "TXN-010002"
	ErrCodeNegativeAmount         Code = "TXN-010003"
)
