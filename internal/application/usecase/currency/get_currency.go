package currency

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// GetCurrencyInput represents the input for currency retrieval by code.
type GetCurrencyInput struct {
	Code string
}

// GetCurrencyOutput represents the output of currency retrieval.
type GetCurrencyOutput struct {
	Currency *entity.Currency
}

// GetCurrencyUseCase handles currency retrieval logic. Lookup is
// case-insensitive.
type GetCurrencyUseCase struct {
	currencyRepo adapter.CurrencyRepository
}

// NewGetCurrencyUseCase creates a new GetCurrencyUseCase instance.
func NewGetCurrencyUseCase(currencyRepo adapter.CurrencyRepository) *GetCurrencyUseCase {
	return &GetCurrencyUseCase{
		currencyRepo: currencyRepo,
	}
}

// Execute performs the currency retrieval.
func (uc *GetCurrencyUseCase) Execute(ctx context.Context, input GetCurrencyInput) (*GetCurrencyOutput, error) {
	currency, err := uc.currencyRepo.FindByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, domainerror.ErrCurrencyNotFound) {
			return nil, domainerror.NotFound(
				domainerror.ErrCodeCurrencyNotFound,
				"currency not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}

	return &GetCurrencyOutput{
		Currency: currency,
	}, nil
}
