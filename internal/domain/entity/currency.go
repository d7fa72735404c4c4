package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Currency represents an ISO 4217 currency. Codes are stored uppercase and
// are unique.
type Currency struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Symbol    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCurrency creates a new Currency entity, normalizing the code to
// uppercase.
func NewCurrency(code, name, symbol string) *Currency {
	now := time.Now().UTC()
	return &Currency{
		ID:        uuid.New(),
		Code:      strings.ToUpper(code),
		Name:      name,
		Symbol:    symbol,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
