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

// ListBudgetsByCategoryInput represents the input for listing budgets of a
// category.
type ListBudgetsByCategoryInput struct {
	CategoryID uuid.UUID
}

// ListBudgetsByCategoryOutput represents the output of listing budgets of a
// category.
type ListBudgetsByCategoryOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsByCategoryUseCase handles listing the budgets of a category.
type ListBudgetsByCategoryUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewListBudgetsByCategoryUseCase creates a new ListBudgetsByCategoryUseCase
// instance.
func NewListBudgetsByCategoryUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *ListBudgetsByCategoryUseCase {
	return &ListBudgetsByCategoryUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsByCategoryUseCase) Execute(ctx context.Context, input ListBudgetsByCategoryInput) (*ListBudgetsByCategoryOutput, error) {
	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	budgets, err := uc.budgetRepo.FindByCategoryID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsByCategoryOutput{
		Budgets: budgets,
	}, nil
}
