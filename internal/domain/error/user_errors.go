package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// User error codes.
const (
	ErrCodeUserNotFound  Code = "USR-010001"
	ErrCodeUsernameTaken Code = "USR-010002"
	ErrCodeEmailTaken    Code = "USR-010003"
)
