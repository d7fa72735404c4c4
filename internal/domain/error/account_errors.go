package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountUserNotFound is returned when the owning user does not exist.
	ErrAccountUserNotFound = errors.New("user for account not found")

	// ErrAccountCurrencyNotFound is returned when the referenced currency
	// does not exist.
	ErrAccountCurrencyNotFound = errors.New("currency for account not found")
)

// Account error codes.
const (
	ErrCodeAccountNotFound         Code = "ACC-010001"
	ErrCodeAccountUserNotFound     Code = "ACC-010002"
	ErrCodeAccountCurrencyNotFound Code = "ACC-010003"
)
