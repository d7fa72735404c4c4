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

// UpdateGoalProgressInput represents the input for a goal progress update.
type UpdateGoalProgressInput struct {
	GoalID        uuid.UUID
	CurrentAmount decimal.Decimal
}

// UpdateGoalProgressOutput represents the output of a goal progress update.
type UpdateGoalProgressOutput struct {
	Goal *entity.Goal
}

// UpdateGoalProgressUseCase handles goal progress updates. The new amount
// must stay within [0, target]; the status field is never touched here.
type UpdateGoalProgressUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalProgressUseCase creates a new UpdateGoalProgressUseCase
// instance.
func NewUpdateGoalProgressUseCase(goalRepo adapter.GoalRepository) *UpdateGoalProgressUseCase {
	return &UpdateGoalProgressUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal progress update.
func (uc *UpdateGoalProgressUseCase) Execute(ctx context.Context, input UpdateGoalProgressInput) (*UpdateGoalProgressOutput, error) {
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

	if input.CurrentAmount.IsNegative() || input.CurrentAmount.GreaterThan(goal.TargetAmount) {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeProgressOutOfRange,
			"current amount must be between zero and the target amount",
			domainerror.ErrProgressOutOfRange,
		)
	}

	goal.CurrentAmount = input.CurrentAmount
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalProgressOutput{
		Goal: goal,
	}, nil
}
