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

// UpdateRecurringTransactionInput represents the input for recurring
// transaction update. Nil fields are left unchanged.
type UpdateRecurringTransactionInput struct {
	RecurringTransactionID uuid.UUID
	CategoryID             *uuid.UUID
	Amount                 *decimal.Decimal
	Description            *string
	StartDate              *time.Time
	EndDate                *time.Time
	Frequency              *entity.Frequency
}

// UpdateRecurringTransactionOutput represents the output of recurring
// transaction update.
type UpdateRecurringTransactionOutput struct {
	RecurringTransaction *entity.RecurringTransaction
}

// UpdateRecurringTransactionUseCase handles recurring transaction update
// logic.
type UpdateRecurringTransactionUseCase struct {
	recurringRepo adapter.RecurringTransactionRepository
	categoryRepo  adapter.CategoryRepository
}

// NewUpdateRecurringTransactionUseCase creates a new
// UpdateRecurringTransactionUseCase instance.
func NewUpdateRecurringTransactionUseCase(recurringRepo adapter.RecurringTransactionRepository, categoryRepo adapter.CategoryRepository) *UpdateRecurringTransactionUseCase {
	return &UpdateRecurringTransactionUseCase{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute performs the recurring transaction update.
func (uc *UpdateRecurringTransactionUseCase) Execute(ctx context.Context, input UpdateRecurringTransactionInput) (*UpdateRecurringTransactionOutput, error) {
	recurring, err := uc.recurringRepo.FindByID(ctx, input.RecurringTransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringTransactionNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeRecurringTransactionNotFound,
				"recurring transaction not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find recurring transaction: %w", err)
	}

	if input.Frequency != nil {
		if !input.Frequency.IsValid() {
			return nil, domainerror.Invalid(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be 'daily', 'weekly', 'monthly' or 'yearly'",
				domainerror.ErrInvalidFrequency,
			)
		}
		recurring.Frequency = *input.Frequency
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.Invalid(
				domainerror.ErrCodeNegativeAmount,
				"amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		recurring.Amount = *input.Amount
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
		recurring.CategoryID = *input.CategoryID
	}

	if input.Description != nil {
		recurring.Description = input.Description
	}
	if input.StartDate != nil {
		recurring.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		recurring.EndDate = input.EndDate
	}

	if recurring.EndDate != nil && recurring.EndDate.Before(recurring.StartDate) {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeEndBeforeStart,
			"end date must not precede start date",
			domainerror.ErrEndBeforeStart,
		)
	}
	recurring.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to update recurring transaction: %w", err)
	}

	return &UpdateRecurringTransactionOutput{
		RecurringTransaction: recurring,
	}, nil
}
