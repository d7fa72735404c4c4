package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create persists a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserID retrieves all budgets belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByCategoryID retrieves all budgets for a category.
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Budget, error)

	// Update updates an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, id uuid.UUID) error
}
