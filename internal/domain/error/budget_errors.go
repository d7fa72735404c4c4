package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetEndBeforeStart is returned when the budget period ends
	// before it starts.
	ErrBudgetEndBeforeStart = errors.New("budget end date must not precede start date")

	// ErrBudgetNegativeAmount is returned when the budgeted amount is
	// negative.
	ErrBudgetNegativeAmount = errors.New("budget amount must not be negative")
)

// Budget error codes.
const (
	ErrCodeBudgetNotFound       Code = "BUD-010001"
	ErrCodeBudgetEndBeforeStart Code = "BUD-010002"
	ErrCodeBudgetNegativeAmount Code = "BUD-010003"
)
