package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
// Dates use the YYYY-MM-DD format.
type CreateBudgetRequest struct {
	UserID     string          `json:"user_id" binding:"required,uuid"`
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount"`
	StartDate  string          `json:"start_date" binding:"required"`
	EndDate    string          `json:"end_date" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	CategoryID *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	StartDate  *string          `json:"start_date,omitempty"`
	EndDate    *string          `json:"end_date,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID.String(),
		UserID:     b.UserID.String(),
		CategoryID: b.CategoryID.String(),
		Amount:     b.Amount,
		StartDate:  b.StartDate.Format(DateLayout),
		EndDate:    b.EndDate.Format(DateLayout),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budgets to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: items,
	}
}
