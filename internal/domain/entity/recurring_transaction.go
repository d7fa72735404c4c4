package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether the frequency is one of the known values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringTransaction represents a transaction template that repeats on a
// fixed schedule. EndDate is optional; when set it must not precede StartDate.
type RecurringTransaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	Frequency   Frequency
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecurringTransaction creates a new RecurringTransaction entity.
func NewRecurringTransaction(accountID, categoryID uuid.UUID, amount decimal.Decimal, description *string, startDate time.Time, endDate *time.Time, frequency Frequency) *RecurringTransaction {
	now := time.Now().UTC()
	return &RecurringTransaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Frequency:   frequency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
