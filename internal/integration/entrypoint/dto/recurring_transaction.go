package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
)

// CreateRecurringTransactionRequest represents the request body for
// recurring transaction creation. Dates use the YYYY-MM-DD format.
type CreateRecurringTransactionRequest struct {
	AccountID   string          `json:"account_id" binding:"required,uuid"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	StartDate   string          `json:"start_date" binding:"required"`
	EndDate     *string         `json:"end_date,omitempty"`
	Frequency   string          `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
}

// UpdateRecurringTransactionRequest represents the request body for
// recurring transaction update.
type UpdateRecurringTransactionRequest struct {
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	StartDate   *string          `json:"start_date,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
	Frequency   *string          `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
}

// RecurringTransactionResponse represents a single recurring transaction in
// API responses.
type RecurringTransactionResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	CategoryID  string          `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date,omitempty"`
	Frequency   string          `json:"frequency"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RecurringTransactionListResponse represents the response for listing
// recurring transactions.
type RecurringTransactionListResponse struct {
	RecurringTransactions []RecurringTransactionResponse `json:"recurring_transactions"`
}

// ToRecurringTransactionResponse converts a domain RecurringTransaction
// entity to a RecurringTransactionResponse DTO.
func ToRecurringTransactionResponse(r *entity.RecurringTransaction) RecurringTransactionResponse {
	response := RecurringTransactionResponse{
		ID:          r.ID.String(),
		AccountID:   r.AccountID.String(),
		CategoryID:  r.CategoryID.String(),
		Amount:      r.Amount,
		Description: r.Description,
		StartDate:   r.StartDate.Format(DateLayout),
		Frequency:   string(r.Frequency),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.EndDate != nil {
		dateStr := r.EndDate.Format(DateLayout)
		response.EndDate = &dateStr
	}

	return response
}

// ToRecurringTransactionListResponse converts a list of recurring
// transactions to RecurringTransactionListResponse.
func ToRecurringTransactionListResponse(recurring []*entity.RecurringTransaction) RecurringTransactionListResponse {
	items := make([]RecurringTransactionResponse, len(recurring))
	for i, r := range recurring {
		items[i] = ToRecurringTransactionResponse(r)
	}
	return RecurringTransactionListResponse{
		RecurringTransactions: items,
	}
}
