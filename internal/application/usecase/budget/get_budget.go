package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// GetBudgetInput represents the input for budget retrieval.
type GetBudgetInput struct {
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of budget retrieval.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase handles budget retrieval logic.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget retrieval.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	return &GetBudgetOutput{
		Budget: budget,
	}, nil
}
