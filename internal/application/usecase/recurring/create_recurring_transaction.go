// Package recurring contains recurring-transaction use cases.
package recurring

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

// CreateRecurringTransactionInput represents the input for recurring
// transaction creation.
type CreateRecurringTransactionInput struct {
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	Frequency   entity.Frequency
}

// CreateRecurringTransactionOutput represents the output of recurring
// transaction creation.
type CreateRecurringTransactionOutput struct {
	RecurringTransaction *entity.RecurringTransaction
}

// CreateRecurringTransactionUseCase handles recurring transaction creation
// logic.
type CreateRecurringTransactionUseCase struct {
	recurringRepo adapter.RecurringTransactionRepository
	accountRepo   adapter.AccountRepository
	categoryRepo  adapter.CategoryRepository
}

// NewCreateRecurringTransactionUseCase creates a new
// CreateRecurringTransactionUseCase instance.
func NewCreateRecurringTransactionUseCase(recurringRepo adapter.RecurringTransactionRepository, accountRepo adapter.AccountRepository, categoryRepo adapter.CategoryRepository) *CreateRecurringTransactionUseCase {
	return &CreateRecurringTransactionUseCase{
		recurringRepo: recurringRepo,
		accountRepo:   accountRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute performs the recurring transaction creation.
func (uc *CreateRecurringTransactionUseCase) Execute(ctx context.Context, input CreateRecurringTransactionInput) (*CreateRecurringTransactionOutput, error) {
	if !input.Frequency.IsValid() {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'daily', 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidFrequency,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeEndBeforeStart,
			"end date must not precede start date",
			domainerror.ErrEndBeforeStart,
		)
	}

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

	recurring := entity.NewRecurringTransaction(input.AccountID, input.CategoryID, input.Amount, input.Description, input.StartDate, input.EndDate, input.Frequency)

	if err := uc.recurringRepo.Create(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}

	return &CreateRecurringTransactionOutput{
		RecurringTransaction: recurring,
	}, nil
}
