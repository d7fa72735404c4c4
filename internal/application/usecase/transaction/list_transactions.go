package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for transaction listing. The
// filter is passed through to the repository after validating that any
// referenced account, user or category exists.
type ListTransactionsInput struct {
	Filter adapter.TransactionFilter
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	userRepo        adapter.UserRepository
	categoryRepo    adapter.CategoryRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, accountRepo adapter.AccountRepository, userRepo adapter.UserRepository, categoryRepo adapter.CategoryRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := input.Filter

	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if filter.AccountID != nil {
		if _, err := uc.accountRepo.FindByID(ctx, *filter.AccountID); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return nil, domainerror.NotFound(
					domainerror.ErrCodeAccountNotFound,
					"account not found",
					err,
				)
			}
			return nil, fmt.Errorf("failed to find account: %w", err)
		}
	}

	if filter.UserID != nil {
		if _, err := uc.userRepo.FindByID(ctx, *filter.UserID); err != nil {
			if errors.Is(err, domainerror.ErrUserNotFound) {
				return nil, domainerror.NotFound(
					domainerror.ErrCodeUserNotFound,
					"user not found",
					err,
				)
			}
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
	}

	if filter.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *filter.CategoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NotFound(
					domainerror.ErrCodeCategoryNotFound,
					"category not found",
					err,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	transactions, err := uc.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
	}, nil
}
