package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/usecase/goal"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	createUseCase         *goal.CreateGoalUseCase
	getUseCase            *goal.GetGoalUseCase
	listUseCase           *goal.ListGoalsUseCase
	updateUseCase         *goal.UpdateGoalUseCase
	updateProgressUseCase *goal.UpdateGoalProgressUseCase
	deleteUseCase         *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	updateProgressUseCase *goal.UpdateGoalProgressUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:         createUseCase,
		getUseCase:            getUseCase,
		listUseCase:           listUseCase,
		updateUseCase:         updateUseCase,
		updateProgressUseCase: updateProgressUseCase,
		deleteUseCase:         deleteUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
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
	startDate, ok := parseDate(ctx, req.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseDate(ctx, req.EndDate)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// ListByUser handles GET /goals/user/:user_id requests. Status is an
// optional query parameter.
func (c *GoalController) ListByUser(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "user_id")
	if !ok {
		return
	}

	input := goal.ListGoalsInput{
		UserID: userID,
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.GoalStatus(statusStr)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// UpdateProgress handles PATCH /goals/:id/progress requests.
func (c *GoalController) UpdateProgress(ctx *gin.Context) {
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGoalProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateProgressUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalProgressInput{
		GoalID:        goalID,
		CurrentAmount: req.CurrentAmount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:       goalID,
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
	}

	if req.StartDate != nil {
		startDate, ok := parseDate(ctx, *req.StartDate)
		if !ok {
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, ok := parseDate(ctx, *req.EndDate)
		if !ok {
			return
		}
		input.EndDate = &endDate
	}
	if req.Status != nil {
		status := entity.GoalStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
