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

// MarkAlertReadInput represents the input for marking an alert as read.
type MarkAlertReadInput struct {
	AlertID uuid.UUID
}

// MarkAlertReadOutput represents the output of marking an alert as read.
type MarkAlertReadOutput struct {
	Alert *entity.Alert
}

// MarkAlertReadUseCase handles marking an alert as read. Marking an already
// read alert is a no-op.
type MarkAlertReadUseCase struct {
	alertRepo adapter.AlertRepository
}

// NewMarkAlertReadUseCase creates a new MarkAlertReadUseCase instance.
func NewMarkAlertReadUseCase(alertRepo adapter.AlertRepository) *MarkAlertReadUseCase {
	return &MarkAlertReadUseCase{
		alertRepo: alertRepo,
	}
}

// Execute marks the alert as read.
func (uc *MarkAlertReadUseCase) Execute(ctx context.Context, input MarkAlertReadInput) (*MarkAlertReadOutput, error) {
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

	if !alert.IsRead {
		alert.IsRead = true
		alert.UpdatedAt = time.Now().UTC()
		if err := uc.alertRepo.Update(ctx, alert); err != nil {
			return nil, fmt.Errorf("failed to update alert: %w", err)
		}
	}

	return &MarkAlertReadOutput{
		Alert: alert,
	}, nil
}
