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

// ListByAccountInput represents the input for listing an account's recurring
// transactions.
type ListByAccountInput struct {
	AccountID uuid.UUID
}

// ListByAccountOutput represents the output of listing an account's recurring
// transactions.
type ListByAccountOutput struct {
	RecurringTransactions []*entity.RecurringTransaction
}

// ListByAccountUseCase handles listing recurring transactions of an account.
type ListByAccountUseCase struct {
	recurringRepo adapter.RecurringTransactionRepository
	accountRepo   adapter.AccountRepository
}

// NewListByAccountUseCase creates a new ListByAccountUseCase instance.
func NewListByAccountUseCase(recurringRepo adapter.RecurringTransactionRepository, accountRepo adapter.AccountRepository) *ListByAccountUseCase {
	return &ListByAccountUseCase{
		recurringRepo: recurringRepo,
		accountRepo:   accountRepo,
	}
}

// Execute performs the listing.
func (uc *ListByAccountUseCase) Execute(ctx context.Context, input ListByAccountInput) (*ListByAccountOutput, error) {
	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	recurring, err := uc.recurringRepo.FindByAccountID(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}

	return &ListByAccountOutput{
		RecurringTransactions: recurring,
	}, nil
}
