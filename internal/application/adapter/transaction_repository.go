package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing. Zero-valued fields are
// ignored.
type TransactionFilter struct {
	AccountID  *uuid.UUID
	UserID     *uuid.UUID
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	From       *time.Time
	To         *time.Time
}

// TransactionRepository defines the interface for transaction persistence
// operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// List retrieves transactions matching the filter, newest first.
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
