package dto

import (
	"time"

	"github.com/finbook/backend/internal/domain/entity"
)

// CreateCurrencyRequest represents the request body for currency creation.
type CreateCurrencyRequest struct {
	Code   string `json:"code" binding:"required,len=3"`
	Name   string `json:"name" binding:"required,max=100"`
	Symbol string `json:"symbol" binding:"required,max=10"`
}

// CurrencyResponse represents a single currency in API responses.
type CurrencyResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrencyListResponse represents the response for listing currencies.
type CurrencyListResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToCurrencyResponse converts a domain Currency entity to a CurrencyResponse
// DTO.
func ToCurrencyResponse(c *entity.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:        c.ID.String(),
		Code:      c.Code,
		Name:      c.Name,
		Symbol:    c.Symbol,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCurrencyListResponse converts a list of currencies to
// CurrencyListResponse.
func ToCurrencyListResponse(currencies []*entity.Currency) CurrencyListResponse {
	items := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		items[i] = ToCurrencyResponse(c)
	}
	return CurrencyListResponse{
		Currencies: items,
	}
}
