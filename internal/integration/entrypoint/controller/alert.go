package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/usecase/alert"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// AlertController handles alert endpoints.
type AlertController struct {
	createUseCase   *alert.CreateAlertUseCase
	listUseCase     *alert.ListAlertsUseCase
	markReadUseCase *alert.MarkAlertReadUseCase
	updateUseCase   *alert.UpdateAlertUseCase
	deleteUseCase   *alert.DeleteAlertUseCase
}

// NewAlertController creates a new alert controller instance.
func NewAlertController(
	createUseCase *alert.CreateAlertUseCase,
	listUseCase *alert.ListAlertsUseCase,
	markReadUseCase *alert.MarkAlertReadUseCase,
	updateUseCase *alert.UpdateAlertUseCase,
	deleteUseCase *alert.DeleteAlertUseCase,
) *AlertController {
	return &AlertController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// Create handles POST /alerts requests.
func (c *AlertController) Create(ctx *gin.Context) {
	var req dto.CreateAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}
	triggerDate, ok := parseDate(ctx, req.TriggerDate)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), alert.CreateAlertInput{
		UserID:      userID,
		Message:     req.Message,
		Type:        entity.AlertType(req.Type),
		TriggerDate: triggerDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAlertResponse(output.Alert))
}

// ListByUser handles GET /alerts/user/:user_id requests. Setting the unread
// query parameter to true restricts the result to unread alerts.
func (c *AlertController) ListByUser(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "user_id")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), alert.ListAlertsInput{
		UserID:     userID,
		UnreadOnly: ctx.Query("unread") == "true",
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertListResponse(output.Alerts))
}

// MarkRead handles PATCH /alerts/:id/read requests.
func (c *AlertController) MarkRead(ctx *gin.Context) {
	alertID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.markReadUseCase.Execute(ctx.Request.Context(), alert.MarkAlertReadInput{
		AlertID: alertID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertResponse(output.Alert))
}

// Update handles PUT /alerts/:id requests.
func (c *AlertController) Update(ctx *gin.Context) {
	alertID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := alert.UpdateAlertInput{
		AlertID: alertID,
		Message: req.Message,
		IsRead:  req.IsRead,
	}

	if req.Type != nil {
		alertType := entity.AlertType(*req.Type)
		input.Type = &alertType
	}
	if req.TriggerDate != nil {
		triggerDate, ok := parseDate(ctx, *req.TriggerDate)
		if !ok {
			return
		}
		input.TriggerDate = &triggerDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertResponse(output.Alert))
}

// Delete handles DELETE /alerts/:id requests.
func (c *AlertController) Delete(ctx *gin.Context) {
	alertID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), alert.DeleteAlertInput{
		AlertID: alertID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
