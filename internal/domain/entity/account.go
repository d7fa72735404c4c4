package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a financial account (checking, savings, credit card)
// belonging to exactly one user.
type Account struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Type       string
	Balance    decimal.Decimal
	CurrencyID uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name, accountType string, balance decimal.Decimal, currencyID uuid.UUID) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Type:       accountType,
		Balance:    balance,
		CurrencyID: currencyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
