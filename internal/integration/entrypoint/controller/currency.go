package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/application/usecase/currency"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// CurrencyController handles currency endpoints.
type CurrencyController struct {
	createUseCase *currency.CreateCurrencyUseCase
	getUseCase    *currency.GetCurrencyUseCase
	listUseCase   *currency.ListCurrenciesUseCase
}

// NewCurrencyController creates a new currency controller instance.
func NewCurrencyController(
	createUseCase *currency.CreateCurrencyUseCase,
	getUseCase *currency.GetCurrencyUseCase,
	listUseCase *currency.ListCurrenciesUseCase,
) *CurrencyController {
	return &CurrencyController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /currencies requests.
func (c *CurrencyController) Create(ctx *gin.Context) {
	var req dto.CreateCurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), currency.CreateCurrencyInput{
		Code:   req.Code,
		Name:   req.Name,
		Symbol: req.Symbol,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCurrencyResponse(output.Currency))
}

// Get handles GET /currencies/:code requests. Lookup is case-insensitive.
func (c *CurrencyController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), currency.GetCurrencyInput{
		Code: ctx.Param("code"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrencyResponse(output.Currency))
}

// List handles GET /currencies requests.
func (c *CurrencyController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrencyListResponse(output.Currencies))
}
