package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/application/usecase/transaction"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	getUseCase    *transaction.GetTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
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
	date, ok := parseDate(ctx, req.Date)
	if !ok {
		return
	}

	input := transaction.CreateTransactionInput{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		Type:        entity.TransactionType(req.Type),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	transactionID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// ListByAccount handles GET /transactions/account/:account_id requests.
// Optional query parameters: type, from, to.
func (c *TransactionController) ListByAccount(ctx *gin.Context) {
	accountID, ok := parseUUIDParam(ctx, "account_id")
	if !ok {
		return
	}

	filter := adapter.TransactionFilter{
		AccountID: &accountID,
	}
	if !c.applyQueryFilter(ctx, &filter) {
		return
	}

	c.list(ctx, filter)
}

// ListByUser handles GET /transactions/user/:user_id requests.
func (c *TransactionController) ListByUser(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "user_id")
	if !ok {
		return
	}

	filter := adapter.TransactionFilter{
		UserID: &userID,
	}
	if !c.applyQueryFilter(ctx, &filter) {
		return
	}

	c.list(ctx, filter)
}

// ListByCategory handles GET /transactions/category/:category_id requests.
func (c *TransactionController) ListByCategory(ctx *gin.Context) {
	categoryID, ok := parseUUIDParam(ctx, "category_id")
	if !ok {
		return
	}

	filter := adapter.TransactionFilter{
		CategoryID: &categoryID,
	}
	if !c.applyQueryFilter(ctx, &filter) {
		return
	}

	c.list(ctx, filter)
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		Amount:        req.Amount,
		Description:   req.Description,
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
	if req.Date != nil {
		date, ok := parseDate(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}
	if req.Type != nil {
		txType := entity.TransactionType(*req.Type)
		input.Type = &txType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// applyQueryFilter reads the optional type, from and to query parameters
// into the filter. Returns false after responding when a parameter is
// malformed.
func (c *TransactionController) applyQueryFilter(ctx *gin.Context, filter *adapter.TransactionFilter) bool {
	if typeStr := ctx.Query("type"); typeStr != "" {
		txType := entity.TransactionType(typeStr)
		filter.Type = &txType
	}
	if fromStr := ctx.Query("from"); fromStr != "" {
		from, ok := parseDate(ctx, fromStr)
		if !ok {
			return false
		}
		filter.From = &from
	}
	if toStr := ctx.Query("to"); toStr != "" {
		to, ok := parseDate(ctx, toStr)
		if !ok {
			return false
		}
		filter.To = &to
	}
	return true
}

func (c *TransactionController) list(ctx *gin.Context, filter adapter.TransactionFilter) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		Filter: filter,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}
