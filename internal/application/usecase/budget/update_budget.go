package budget

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

// UpdateBudgetInput represents the input for budget update. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	BudgetID   uuid.UUID
	CategoryID *uuid.UUID
	Amount     *decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
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

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.Invalid(
				domainerror.ErrCodeBudgetNegativeAmount,
				"budget amount must not be negative",
				domainerror.ErrBudgetNegativeAmount,
			)
		}
		budget.Amount = *input.Amount
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NotFound(
					domainerror.ErrCodeCategoryNotFound,
					"category not found",
					err,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		budget.CategoryID = *input.CategoryID
	}

	if input.StartDate != nil {
		budget.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		budget.EndDate = *input.EndDate
	}

	if budget.EndDate.Before(budget.StartDate) {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeBudgetEndBeforeStart,
			"budget end date must not precede start date",
			domainerror.ErrBudgetEndBeforeStart,
		)
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
