package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left
// unchanged. Status changes happen only here, never as a side effect of a
// progress update.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	Name         *string
	Description  *string
	TargetAmount *decimal.Decimal
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *entity.GoalStatus
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.Invalid(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		if goal.CurrentAmount.GreaterThan(*input.TargetAmount) {
			return nil, domainerror.Invalid(
				domainerror.ErrCodeProgressOutOfRange,
				"target amount must not drop below the current amount",
				domainerror.ErrProgressOutOfRange,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerror.Invalid(
				domainerror.ErrCodeInvalidGoalStatus,
				"status must be 'in_progress', 'achieved' or 'abandoned'",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		// achieved and abandoned are terminal
		if goal.Status != entity.GoalStatusInProgress && *input.Status != goal.Status {
			return nil, domainerror.Invalid(
				domainerror.ErrCodeInvalidGoalStatus,
				"an achieved or abandoned goal cannot change status",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		goal.Status = *input.Status
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.Description != nil {
		goal.Description = input.Description
	}
	if input.StartDate != nil {
		goal.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		goal.EndDate = *input.EndDate
	}

	if goal.EndDate.Before(goal.StartDate) {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeGoalEndBeforeStart,
			"goal end date must not precede start date",
			domainerror.ErrGoalEndBeforeStart,
		)
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
