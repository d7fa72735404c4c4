package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation. Dates use
// the YYYY-MM-DD format.
type CreateGoalRequest struct {
	UserID       string          `json:"user_id" binding:"required,uuid"`
	Name         string          `json:"name" binding:"required,max=100"`
	Description  *string         `json:"description,omitempty"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	StartDate    string          `json:"start_date" binding:"required"`
	EndDate      string          `json:"end_date" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	Description  *string          `json:"description,omitempty"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	StartDate    *string          `json:"start_date,omitempty"`
	EndDate      *string          `json:"end_date,omitempty"`
	Status       *string          `json:"status,omitempty" binding:"omitempty,oneof=in_progress achieved abandoned"`
}

// UpdateGoalProgressRequest represents the request body for a goal progress
// update.
type UpdateGoalProgressRequest struct {
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		StartDate:     g.StartDate.Format(DateLayout),
		EndDate:       g.EndDate.Format(DateLayout),
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: items,
	}
}
