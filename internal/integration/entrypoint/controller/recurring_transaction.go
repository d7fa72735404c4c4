package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/usecase/recurring"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// RecurringTransactionController handles recurring transaction endpoints.
type RecurringTransactionController struct {
	createUseCase        *recurring.CreateRecurringTransactionUseCase
	listByAccountUseCase *recurring.ListByAccountUseCase
	listByUserUseCase    *recurring.ListByUserUseCase
	updateUseCase        *recurring.UpdateRecurringTransactionUseCase
	deleteUseCase        *recurring.DeleteRecurringTransactionUseCase
}

// NewRecurringTransactionController creates a new recurring transaction
// controller instance.
func NewRecurringTransactionController(
	createUseCase *recurring.CreateRecurringTransactionUseCase,
	listByAccountUseCase *recurring.ListByAccountUseCase,
	listByUserUseCase *recurring.ListByUserUseCase,
	updateUseCase *recurring.UpdateRecurringTransactionUseCase,
	deleteUseCase *recurring.DeleteRecurringTransactionUseCase,
) *RecurringTransactionController {
	return &RecurringTransactionController{
		createUseCase:        createUseCase,
		listByAccountUseCase: listByAccountUseCase,
		listByUserUseCase:    listByUserUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
	}
}

// Create handles POST /recurring-transactions requests.
func (c *RecurringTransactionController) Create(ctx *gin.Context) {
	var req dto.CreateRecurringTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	startDate, ok := parseDate(ctx, req.StartDate)
	if !ok {
		return
	}

	input := recurring.CreateRecurringTransactionInput{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Description: req.Description,
		StartDate:   startDate,
		Frequency:   entity.Frequency(req.Frequency),
	}

	if req.EndDate != nil {
		endDate, ok := parseDate(ctx, *req.EndDate)
		if !ok {
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringTransactionResponse(output.RecurringTransaction))
}

// ListByAccount handles GET /recurring-transactions/account/:account_id
// requests.
func (c *RecurringTransactionController) ListByAccount(ctx *gin.Context) {
	accountID, ok := parseUUIDParam(ctx, "account_id")
	if !ok {
		return
	}

	output, err := c.listByAccountUseCase.Execute(ctx.Request.Context(), recurring.ListByAccountInput{
		AccountID: accountID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringTransactionListResponse(output.RecurringTransactions))
}

// ListByUser handles GET /recurring-transactions/user/:user_id requests.
func (c *RecurringTransactionController) ListByUser(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "user_id")
	if !ok {
		return
	}

	output, err := c.listByUserUseCase.Execute(ctx.Request.Context(), recurring.ListByUserInput{
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringTransactionListResponse(output.RecurringTransactions))
}

// Update handles PUT /recurring-transactions/:id requests.
func (c *RecurringTransactionController) Update(ctx *gin.Context) {
	recurringID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRecurringTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := recurring.UpdateRecurringTransactionInput{
		RecurringTransactionID: recurringID,
		Amount:                 req.Amount,
		Description:            req.Description,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
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
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringTransactionResponse(output.RecurringTransaction))
}

// Delete handles DELETE /recurring-transactions/:id requests.
func (c *RecurringTransactionController) Delete(ctx *gin.Context) {
	recurringID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringTransactionInput{
		RecurringTransactionID: recurringID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
