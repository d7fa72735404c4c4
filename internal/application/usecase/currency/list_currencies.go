package currency

import (
	"context"
	"fmt"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
)

// ListCurrenciesOutput represents the output of listing all currencies.
type ListCurrenciesOutput struct {
	Currencies []*entity.Currency
}

// ListCurrenciesUseCase handles listing all registered currencies.
type ListCurrenciesUseCase struct {
	currencyRepo adapter.CurrencyRepository
}

// NewListCurrenciesUseCase creates a new ListCurrenciesUseCase instance.
func NewListCurrenciesUseCase(currencyRepo adapter.CurrencyRepository) *ListCurrenciesUseCase {
	return &ListCurrenciesUseCase{
		currencyRepo: currencyRepo,
	}
}

// Execute performs the currency listing.
func (uc *ListCurrenciesUseCase) Execute(ctx context.Context) (*ListCurrenciesOutput, error) {
	currencies, err := uc.currencyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	return &ListCurrenciesOutput{
		Currencies: currencies,
	}, nil
}
