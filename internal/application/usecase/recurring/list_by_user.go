package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// ListByUserInput represents the input for listing a user's recurring
// transactions.
type ListByUserInput struct {
	UserID uuid.UUID
}

// ListByUserOutput represents the output of listing a user's recurring
// transactions.
type ListByUserOutput struct {
	RecurringTransactions []*entity.RecurringTransaction
}

// ListByUserUseCase handles listing recurring transactions across all
// accounts of a user.
type ListByUserUseCase struct {
	recurringRepo adapter.RecurringTransactionRepository
	userRepo      adapter.UserRepository
}

// NewListByUserUseCase creates a new ListByUserUseCase instance.
func NewListByUserUseCase(recurringRepo adapter.RecurringTransactionRepository, userRepo adapter.UserRepository) *ListByUserUseCase {
	return &ListByUserUseCase{
		recurringRepo: recurringRepo,
		userRepo:      userRepo,
	}
}

// Execute performs the listing.
func (uc *ListByUserUseCase) Execute(ctx context.Context, input ListByUserInput) (*ListByUserOutput, error) {
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

	recurring, err := uc.recurringRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}

	return &ListByUserOutput{
		RecurringTransactions: recurring,
	}, nil
}
