// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/integration/entrypoint/controller"
	"github.com/finbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	userController        *controller.UserController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	recurringController   *controller.RecurringTransactionController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	alertController       *controller.AlertController
	currencyController    *controller.CurrencyController
	registerRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringTransactionController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	alertController *controller.AlertController,
	currencyController *controller.CurrencyController,
	registerRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		userController:        userController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		recurringController:   recurringController,
		budgetController:      budgetController,
		goalController:        goalController,
		alertController:       alertController,
		currencyController:    currencyController,
		registerRateLimiter:   registerRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			if r.registerRateLimiter != nil {
				users.POST("", r.registerRateLimiter.Middleware(), r.userController.Register)
			} else {
				users.POST("", r.userController.Register)
			}
			users.GET("/:id", r.userController.Get)
			users.DELETE("/:id", r.userController.Delete)
		}

		accounts := v1.Group("/accounts")
		{
			accounts.POST("", r.accountController.Create)
			accounts.GET("/:id", r.accountController.Get)
			accounts.GET("/user/:user_id", r.accountController.ListByUser)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.GET("/:id", r.categoryController.Get)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.GET("/account/:account_id", r.transactionController.ListByAccount)
			transactions.GET("/user/:user_id", r.transactionController.ListByUser)
			transactions.GET("/category/:category_id", r.transactionController.ListByCategory)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		recurring := v1.Group("/recurring-transactions")
		{
			recurring.POST("", r.recurringController.Create)
			recurring.GET("/account/:account_id", r.recurringController.ListByAccount)
			recurring.GET("/user/:user_id", r.recurringController.ListByUser)
			recurring.PUT("/:id", r.recurringController.Update)
			recurring.DELETE("/:id", r.recurringController.Delete)
		}

		budgets := v1.Group("/budgets")
		{
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/:id", r.budgetController.Get)
			budgets.GET("/user/:user_id", r.budgetController.ListByUser)
			budgets.GET("/category/:category_id", r.budgetController.ListByCategory)
			budgets.PUT("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		goals := v1.Group("/goals")
		{
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.GET("/user/:user_id", r.goalController.ListByUser)
			goals.PATCH("/:id/progress", r.goalController.UpdateProgress)
			goals.PUT("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.POST("", r.alertController.Create)
			alerts.GET("/user/:user_id", r.alertController.ListByUser)
			alerts.PATCH("/:id/read", r.alertController.MarkRead)
			alerts.PUT("/:id", r.alertController.Update)
			alerts.DELETE("/:id", r.alertController.Delete)
		}

		currencies := v1.Group("/currencies")
		{
			currencies.POST("", r.currencyController.Create)
			currencies.GET("", r.currencyController.List)
			currencies.GET("/:code", r.currencyController.Get)
		}
	}
}
