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

// UpdateAlertInput represents the input for alert update. Nil fields are
// left unchanged.
type UpdateAlertInput struct {
	AlertID     uuid.UUID
	Message     *string
	Type        *entity.AlertType
	TriggerDate *time.Time
	IsRead      *bool
}

// UpdateAlertOutput represents the output of alert update.
type UpdateAlertOutput struct {
	Alert *entity.Alert
}

// UpdateAlertUseCase handles alert update logic.
type UpdateAlertUseCase struct {
	alertRepo adapter.AlertRepository
}

// NewUpdateAlertUseCase creates a new UpdateAlertUseCase instance.
func NewUpdateAlertUseCase(alertRepo adapter.AlertRepository) *UpdateAlertUseCase {
	return &UpdateAlertUseCase{
		alertRepo: alertRepo,
	}
}

// Execute performs the alert update.
func (uc *UpdateAlertUseCase) Execute(ctx context.Context, input UpdateAlertInput) (*UpdateAlertOutput, error) {
	alert, err := uc.alertRepo.FindByID(ctx, input.AlertID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAlertNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeAlertNotFound,
				"alert not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find alert: %w", err)
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.Invalid(
				domainerror.ErrCodeInvalidAlertType,
				"type must be 'budget', 'bill' or 'goal'",
				domainerror.ErrInvalidAlertType,
			)
		}
		alert.Type = *input.Type
	}

	if input.Message != nil {
		alert.Message = *input.Message
	}
	if input.TriggerDate != nil {
		alert.TriggerDate = *input.TriggerDate
	}
	if input.IsRead != nil {
		alert.IsRead = *input.IsRead
	}
	alert.UpdatedAt = time.Now().UTC()

	if err := uc.alertRepo.Update(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}

	return &UpdateAlertOutput{
		Alert: alert,
	}, nil
}
