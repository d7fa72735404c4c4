package dto

import (
	"time"

	"github.com/finbook/backend/internal/domain/entity"
)

// CreateAlertRequest represents the request body for alert creation.
// TriggerDate uses the YYYY-MM-DD format.
type CreateAlertRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	Message     string `json:"message" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=budget bill goal"`
	TriggerDate string `json:"trigger_date" binding:"required"`
}

// UpdateAlertRequest represents the request body for alert update.
type UpdateAlertRequest struct {
	Message     *string `json:"message,omitempty"`
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=budget bill goal"`
	TriggerDate *string `json:"trigger_date,omitempty"`
	IsRead      *bool   `json:"is_read,omitempty"`
}

// AlertResponse represents a single alert in API responses.
type AlertResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	TriggerDate string    `json:"trigger_date"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AlertListResponse represents the response for listing alerts.
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}

// ToAlertResponse converts a domain Alert entity to an AlertResponse DTO.
func ToAlertResponse(a *entity.Alert) AlertResponse {
	return AlertResponse{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		Message:     a.Message,
		Type:        string(a.Type),
		TriggerDate: a.TriggerDate.Format(DateLayout),
		IsRead:      a.IsRead,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAlertListResponse converts a list of alerts to AlertListResponse.
func ToAlertListResponse(alerts []*entity.Alert) AlertListResponse {
	items := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		items[i] = ToAlertResponse(a)
	}
	return AlertListResponse{
		Alerts: items,
	}
}
