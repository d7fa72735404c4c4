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

// ListBudgetsByUserInput represents the input for listing a user's budgets.
type ListBudgetsByUserInput struct {
	UserID uuid.UUID
}

// ListBudgetsByUserOutput represents the output of listing a user's budgets.
type ListBudgetsByUserOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsByUserUseCase handles listing the budgets of a user.
type ListBudgetsByUserUseCase struct {
	budgetRepo adapter.BudgetRepository
	userRepo   adapter.UserRepository
}

// NewListBudgetsByUserUseCase creates a new ListBudgetsByUserUseCase instance.
func NewListBudgetsByUserUseCase(budgetRepo adapter.BudgetRepository, userRepo adapter.UserRepository) *ListBudgetsByUserUseCase {
	return &ListBudgetsByUserUseCase{
		budgetRepo: budgetRepo,
		userRepo:   userRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsByUserUseCase) Execute(ctx context.Context, input ListBudgetsByUserInput) (*ListBudgetsByUserOutput, error) {
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

	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsByUserOutput{
		Budgets: budgets,
	}, nil
}
