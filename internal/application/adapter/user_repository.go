// Package adapter defines interfaces that are implemented in the integration
// layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create persists a new user together with its profile.
	Create(ctx context.Context, user *entity.User, profile *entity.Profile) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindProfileByUserID retrieves the profile owned by the given user.
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// ExistsByUsername checks whether a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete removes a user. Dependent rows (profile, accounts, goals,
	// alerts, budgets) are removed by the database cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
