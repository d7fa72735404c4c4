package alert

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// DeleteAlertInput represents the input for alert deletion.
type DeleteAlertInput struct {
	AlertID uuid.UUID
}

// DeleteAlertUseCase handles alert deletion logic.
type DeleteAlertUseCase struct {
	alertRepo adapter.AlertRepository
}

// NewDeleteAlertUseCase creates a new DeleteAlertUseCase instance.
func NewDeleteAlertUseCase(alertRepo adapter.AlertRepository) *DeleteAlertUseCase {
	return &DeleteAlertUseCase{
		alertRepo: alertRepo,
	}
}

// Execute performs the alert deletion.
func (uc *DeleteAlertUseCase) Execute(ctx context.Context, input DeleteAlertInput) error {
	if err := uc.alertRepo.Delete(ctx, input.AlertID); err != nil {
		if errors.Is(err, domainerror.ErrAlertNotFound) {
			return domainerror.NotFound(
				domainerror.ErrCodeAlertNotFound,
				"alert not found",
				err,
			)
		}
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	return nil
}
