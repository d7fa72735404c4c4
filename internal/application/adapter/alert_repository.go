package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// AlertRepository defines the interface for alert persistence operations.
type AlertRepository interface {
	// Create persists a new alert.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByID retrieves an alert by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// FindByUserID retrieves a user's alerts, optionally restricted to
	// unread ones, newest trigger date first.
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Alert, error)

	// Update updates an existing alert.
	Update(ctx context.Context, alert *entity.Alert) error

	// Delete removes an alert.
	Delete(ctx context.Context, id uuid.UUID) error
}
