package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// RecurringTransactionRepository defines the interface for recurring
// transaction persistence operations.
type RecurringTransactionRepository interface {
	// Create persists a new recurring transaction.
	Create(ctx context.Context, recurring *entity.RecurringTransaction) error

	// FindByID retrieves a recurring transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTransaction, error)

	// FindByAccountID retrieves all recurring transactions on an account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.RecurringTransaction, error)

	// FindByUserID retrieves all recurring transactions on accounts owned
	// by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error)

	// Update updates an existing recurring transaction.
	Update(ctx context.Context, recurring *entity.RecurringTransaction) error

	// Delete removes a recurring transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
