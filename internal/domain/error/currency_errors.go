package error

import "errors"

// Currency domain errors.
var (
	// ErrCurrencyNotFound is returned when a currency code has no row.
	ErrCurrencyNotFound = errors.New("currency not found")

	// ErrCurrencyCodeTaken is returned when the currency code is already
	// registered.
	ErrCurrencyCodeTaken = errors.New("currency code already exists")

	// ErrInvalidCurrencyCode is returned when the code is not a three
	// letter ISO 4217 code.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
)

// Currency error codes.
const (
	ErrCodeCurrencyNotFound    Code = "CUR-010001"
	ErrCodeCurrencyCodeTaken   Code = "CUR-010002"
	ErrCodeInvalidCurrencyCode Code = "CUR-010003"
)
