package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or
	// negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrProgressOutOfRange is returned when a progress amount falls
	// outside [0, target_amount].
	ErrProgressOutOfRange = errors.New("progress amount out of range")

	// ErrInvalidGoalStatus is returned when the status is not one of
	// in_progress, achieved or abandoned.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrGoalEndBeforeStart is returned when the goal ends before it
	// starts.
	ErrGoalEndBeforeStart = errors.New("goal end date must not precede start date")
)

// Goal error codes.
const (
	ErrCodeGoalNotFound        Code = "GOL-010001"
	ErrCodeInvalidTargetAmount Code = "GOL-010002"
	ErrCodeProgressOutOfRange  Code = "GOL-010003"
	ErrCodeInvalidGoalStatus   Code = "GOL-010004"
	ErrCodeGoalEndBeforeStart  Code = "GOL-010005"
)
