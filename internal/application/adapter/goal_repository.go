package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create persists a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a user, optionally filtered by
	// status.
	FindByUserID(ctx context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error)

	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
