package alert

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// ListAlertsInput represents the input for listing a user's alerts.
type ListAlertsInput struct {
	UserID     uuid.UUID
	UnreadOnly bool
}

// ListAlertsOutput represents the output of listing a user's alerts.
type ListAlertsOutput struct {
	Alerts []*entity.Alert
}

// ListAlertsUseCase handles listing the alerts of a user.
type ListAlertsUseCase struct {
	alertRepo adapter.AlertRepository
	userRepo  adapter.UserRepository
}

// NewListAlertsUseCase creates a new ListAlertsUseCase instance.
func NewListAlertsUseCase(alertRepo adapter.AlertRepository, userRepo adapter.UserRepository) *ListAlertsUseCase {
	return &ListAlertsUseCase{
		alertRepo: alertRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the alert listing.
func (uc *ListAlertsUseCase) Execute(ctx context.Context, input ListAlertsInput) (*ListAlertsOutput, error) {
	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	alerts, err := uc.alertRepo.FindByUserID(ctx, input.UserID, input.UnreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return &ListAlertsOutput{
		Alerts: alerts,
	}, nil
}
