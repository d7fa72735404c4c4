package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
// A goal starts in progress; achieved and abandoned are both terminal and are
// only ever set through an explicit update, never as a side effect of a
// progress change.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusAchieved   GoalStatus = "achieved"
	GoalStatusAbandoned  GoalStatus = "abandoned"
)

// IsValid reports whether the status is one of the known values.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusInProgress, GoalStatusAchieved, GoalStatusAbandoned:
		return true
	}
	return false
}

// Goal represents a savings goal. CurrentAmount always stays within
// [0, TargetAmount].
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   *string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity starting in progress with zero savings.
func NewGoal(userID uuid.UUID, name string, description *string, targetAmount decimal.Decimal, startDate, endDate time.Time) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        GoalStatusInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
