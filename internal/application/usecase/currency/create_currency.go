// Package currency contains currency-related use cases.
package currency

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// CreateCurrencyInput represents the input for currency creation.
type CreateCurrencyInput struct {
	Code   string
	Name   string
	Symbol string
}

// CreateCurrencyOutput represents the output of currency creation.
type CreateCurrencyOutput struct {
	Currency *entity.Currency
}

// CreateCurrencyUseCase handles currency creation logic. Codes are
// normalized to uppercase before hitting the database, so 'usd' and 'USD'
// are the same currency.
type CreateCurrencyUseCase struct {
	currencyRepo adapter.CurrencyRepository
}

// NewCreateCurrencyUseCase creates a new CreateCurrencyUseCase instance.
func NewCreateCurrencyUseCase(currencyRepo adapter.CurrencyRepository) *CreateCurrencyUseCase {
	return &CreateCurrencyUseCase{
		currencyRepo: currencyRepo,
	}
}

// Execute performs the currency creation.
func (uc *CreateCurrencyUseCase) Execute(ctx context.Context, input CreateCurrencyInput) (*CreateCurrencyOutput, error) {
	if !isValidCurrencyCode(input.Code) {
		return nil, domainerror.Invalid(
			domainerror.ErrCodeInvalidCurrencyCode,
			"code must be a three letter ISO 4217 code",
			domainerror.ErrInvalidCurrencyCode,
		)
	}

	currency := entity.NewCurrency(input.Code, input.Name, input.Symbol)

	if err := uc.currencyRepo.Create(ctx, currency); err != nil {
		if errors.Is(err, domainerror.ErrCurrencyCodeTaken) {
			return nil, domainerror.Conflict(
				domainerror.ErrCodeCurrencyCodeTaken,
				"currency code already exists",
				err,
			)
		}
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return &CreateCurrencyOutput{
		Currency: currency,
	}, nil
}

// isValidCurrencyCode reports whether code is exactly three ASCII letters.
func isValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
