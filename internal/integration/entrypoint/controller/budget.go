package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finbook/backend/internal/application/usecase/budget"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase         *budget.CreateBudgetUseCase
	getUseCase            *budget.GetBudgetUseCase
	listByUserUseCase     *budget.ListBudgetsByUserUseCase
	listByCategoryUseCase *budget.ListBudgetsByCategoryUseCase
	updateUseCase         *budget.UpdateBudgetUseCase
	deleteUseCase         *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	listByUserUseCase *budget.ListBudgetsByUserUseCase,
	listByCategoryUseCase *budget.ListBudgetsByCategoryUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:         createUseCase,
		getUseCase:            getUseCase,
		listByUserUseCase:     listByUserUseCase,
		listByCategoryUseCase: listByCategoryUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
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
	endDate, ok := parseDate(ctx, req.EndDate)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     req.Amount,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		BudgetID: budgetID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// ListByUser handles GET /budgets/user/:user_id requests.
func (c *BudgetController) ListByUser(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "user_id")
	if !ok {
		return
	}

	output, err := c.listByUserUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsByUserInput{
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// ListByCategory handles GET /budgets/category/:category_id requests.
func (c *BudgetController) ListByCategory(ctx *gin.Context) {
	categoryID, ok := parseUUIDParam(ctx, "category_id")
	if !ok {
		return
	}

	output, err := c.listByCategoryUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsByCategoryInput{
		CategoryID: categoryID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID: budgetID,
		Amount:   req.Amount,
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

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
