package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType represents what kind of event an alert notifies about.
type AlertType string

const (
	AlertTypeBudget AlertType = "budget"
	AlertTypeBill   AlertType = "bill"
	AlertTypeGoal   AlertType = "goal"
)

// IsValid reports whether the alert type is one of the known values.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeBudget, AlertTypeBill, AlertTypeGoal:
		return true
	}
	return false
}

// Alert represents a notification row for a user.
type Alert struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Message     string
	Type        AlertType
	TriggerDate time.Time
	IsRead      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAlert creates a new unread Alert entity.
func NewAlert(userID uuid.UUID, message string, alertType AlertType, triggerDate time.Time) *Alert {
	now := time.Now().UTC()
	return &Alert{
		ID:          uuid.New(),
		UserID:      userID,
		Message:     message,
		Type:        alertType,
		TriggerDate: triggerDate,
		IsRead:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
