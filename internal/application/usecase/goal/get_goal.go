package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// GetGoalInput represents the input for goal retrieval.
type GetGoalInput struct {
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of goal retrieval.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase handles goal retrieval logic.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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

	return &GetGoalOutput{
		Goal: goal,
	}, nil
}
