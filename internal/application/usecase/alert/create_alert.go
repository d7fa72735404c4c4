// Package alert contains alert-related use cases.
package alert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// CreateAlertInput represents the input for alert creation.
type CreateAlertInput struct {
	UserID      uuid.UUID
	Message     string
	Type        entity.AlertType
	TriggerDate time.Time
}

// CreateAlertOutput represents the output of alert creation.
type CreateAlertOutput struct {
	Alert *entity.Alert
}

// CreateAlertUseCase handles alert creation logic.
type CreateAlertUseCase struct {
	alertRepo adapter.AlertRepository
	userRepo  adapter.UserRepository
}

// NewCreateAlertUseCase creates a new CreateAlertUseCase instance.
func NewCreateAlertUseCase(alertRepo adapter.AlertRepository, userRepo adapter.UserRepository) *CreateAlertUseCase {
	return &CreateAlertUseCase{
		alertRepo: alertRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the alert creation. New alerts start unread.
func (uc *CreateAlertUseCase) Execute(ctx context.Context, input CreateAlertInput) (*CreateAlertOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeInvalidAlertType,
			"type must be 'budget', 'bill' or 'goal'",
			domainerror.ErrInvalidAlertType,
		)
	}

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

	alert := entity.NewAlert(input.UserID, input.Message, input.Type, input.TriggerDate)

	if err := uc.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	return &CreateAlertOutput{
		Alert: alert,
	}, nil
}
