package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	UserID       string          `json:"user_id" binding:"required,uuid"`
	Name         string          `json:"name" binding:"required,max=100"`
	Type         string          `json:"type" binding:"required,max=50"`
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currency_code" binding:"required,len=3"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Balance    decimal.Decimal `json:"balance"`
	CurrencyID string          `json:"currency_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse
// DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID.String(),
		UserID:     a.UserID.String(),
		Name:       a.Name,
		Type:       a.Type,
		Balance:    a.Balance,
		CurrencyID: a.CurrencyID.String(),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToAccountListResponse converts a list of accounts to AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	items := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		items[i] = ToAccountResponse(a)
	}
	return AccountListResponse{
		Accounts: items,
	}
}
