// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID       uuid.UUID
	Name         string
	Type         string
	Balance      decimal.Decimal
	CurrencyCode string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo  adapter.AccountRepository
	userRepo     adapter.UserRepository
	currencyRepo adapter.CurrencyRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, userRepo adapter.UserRepository, currencyRepo adapter.CurrencyRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		currencyRepo: currencyRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeAccountUserNotFound,
				"user for account not found",
				domainerror.ErrAccountUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	currency, err := uc.currencyRepo.FindByCode(ctx, input.CurrencyCode)
	if err != nil {
		if errors.Is(err, domainerror.ErrCurrencyNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeAccountCurrencyNotFound,
				"currency for account not found",
				domainerror.ErrAccountCurrencyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}

	account := entity.NewAccount(input.UserID, input.Name, input.Type, input.Balance, currency.ID)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
