package adapter

import (
	"context"

	"github.com/finbook/backend/internal/domain/entity"
)

// CurrencyRepository defines the interface for currency persistence
// operations.
type CurrencyRepository interface {
	// Create persists a new currency.
	Create(ctx context.Context, currency *entity.Currency) error

	// FindByCode retrieves a currency by its uppercase ISO code.
	FindByCode(ctx context.Context, code string) (*entity.Currency, error)

	// FindAll retrieves all currencies ordered by code.
	FindAll(ctx context.Context) ([]*entity.Currency, error)
}
