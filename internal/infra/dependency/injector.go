// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/finbook/backend/config"
	"github.com/finbook/backend/internal/application/usecase/account"
	"github.com/finbook/backend/internal/application/usecase/alert"
	"github.com/finbook/backend/internal/application/usecase/budget"
	"github.com/finbook/backend/internal/application/usecase/category"
	"github.com/finbook/backend/internal/application/usecase/currency"
	"github.com/finbook/backend/internal/application/usecase/goal"
	"github.com/finbook/backend/internal/application/usecase/recurring"
	"github.com/finbook/backend/internal/application/usecase/transaction"
	"github.com/finbook/backend/internal/application/usecase/user"
	"github.com/finbook/backend/internal/infra/server/router"
	"github.com/finbook/backend/internal/integration/adapters"
	"github.com/finbook/backend/internal/integration/entrypoint/controller"
	"github.com/finbook/backend/internal/integration/entrypoint/middleware"
	"github.com/finbook/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthy func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	recurringRepo := persistence.NewRecurringTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	alertRepo := persistence.NewAlertRepository(db)
	currencyRepo := persistence.NewCurrencyRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()

	// Create user use cases
	registerUserUseCase := user.NewRegisterUserUseCase(userRepo, passwordService)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, userRepo, currencyRepo)
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo, userRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, accountRepo, userRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create recurring transaction use cases
	createRecurringUseCase := recurring.NewCreateRecurringTransactionUseCase(recurringRepo, accountRepo, categoryRepo)
	listRecurringByAccountUseCase := recurring.NewListByAccountUseCase(recurringRepo, accountRepo)
	listRecurringByUserUseCase := recurring.NewListByUserUseCase(recurringRepo, userRepo)
	updateRecurringUseCase := recurring.NewUpdateRecurringTransactionUseCase(recurringRepo, categoryRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringTransactionUseCase(recurringRepo)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, userRepo, categoryRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	listBudgetsByUserUseCase := budget.NewListBudgetsByUserUseCase(budgetRepo, userRepo)
	listBudgetsByCategoryUseCase := budget.NewListBudgetsByCategoryUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, userRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, userRepo)
	updateGoalProgressUseCase := goal.NewUpdateGoalProgressUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create alert use cases
	createAlertUseCase := alert.NewCreateAlertUseCase(alertRepo, userRepo)
	listAlertsUseCase := alert.NewListAlertsUseCase(alertRepo, userRepo)
	markAlertReadUseCase := alert.NewMarkAlertReadUseCase(alertRepo)
	updateAlertUseCase := alert.NewUpdateAlertUseCase(alertRepo)
	deleteAlertUseCase := alert.NewDeleteAlertUseCase(alertRepo)

	// Create currency use cases
	createCurrencyUseCase := currency.NewCreateCurrencyUseCase(currencyRepo)
	getCurrencyUseCase := currency.NewGetCurrencyUseCase(currencyRepo)
	listCurrenciesUseCase := currency.NewListCurrenciesUseCase(currencyRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthy)

	userController := controller.NewUserController(
		registerUserUseCase,
		getUserUseCase,
		deleteUserUseCase,
	)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		getAccountUseCase,
		listAccountsUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		getCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	recurringController := controller.NewRecurringTransactionController(
		createRecurringUseCase,
		listRecurringByAccountUseCase,
		listRecurringByUserUseCase,
		updateRecurringUseCase,
		deleteRecurringUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		getBudgetUseCase,
		listBudgetsByUserUseCase,
		listBudgetsByCategoryUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		getGoalUseCase,
		listGoalsUseCase,
		updateGoalUseCase,
		updateGoalProgressUseCase,
		deleteGoalUseCase,
	)

	alertController := controller.NewAlertController(
		createAlertUseCase,
		listAlertsUseCase,
		markAlertReadUseCase,
		updateAlertUseCase,
		deleteAlertUseCase,
	)

	currencyController := controller.NewCurrencyController(
		createCurrencyUseCase,
		getCurrencyUseCase,
		listCurrenciesUseCase,
	)

	// Create middleware
	registerRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.WindowDuration,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		userController,
		accountController,
		categoryController,
		transactionController,
		recurringController,
		budgetController,
		goalController,
		alertController,
		currencyController,
		registerRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
