package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUserID retrieves all accounts belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)
}
