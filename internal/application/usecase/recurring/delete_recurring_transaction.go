package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// DeleteRecurringTransactionInput represents the input for recurring
// transaction deletion.
type DeleteRecurringTransactionInput struct {
	RecurringTransactionID uuid.UUID
}

// DeleteRecurringTransactionUseCase handles recurring transaction deletion
// logic.
type DeleteRecurringTransactionUseCase struct {
	recurringRepo adapter.RecurringTransactionRepository
}

// NewDeleteRecurringTransactionUseCase creates a new
// DeleteRecurringTransactionUseCase instance.
func NewDeleteRecurringTransactionUseCase(recurringRepo adapter.RecurringTransactionRepository) *DeleteRecurringTransactionUseCase {
	return &DeleteRecurringTransactionUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring transaction deletion.
func (uc *DeleteRecurringTransactionUseCase) Execute(ctx context.Context, input DeleteRecurringTransactionInput) error {
	if err := uc.recurringRepo.Delete(ctx, input.RecurringTransactionID); err != nil {
		if errors.Is(err, domainerror.ErrRecurringTransactionNotFound) {
			return domainerror.NotFound(
				domainerror.ErrCodeRecurringTransactionNotFound,
				"recurring transaction not found",
				err,
			)
		}
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}
	return nil
}
