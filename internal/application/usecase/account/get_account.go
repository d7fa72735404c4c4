package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// GetAccountInput represents the input for account retrieval.
type GetAccountInput struct {
	AccountID uuid.UUID
}

// GetAccountOutput represents the output of account retrieval.
type GetAccountOutput struct {
	Account *entity.Account
}

// GetAccountUseCase handles account retrieval logic.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account retrieval.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &GetAccountOutput{
		Account: account,
	}, nil
}
