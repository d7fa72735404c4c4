package steps

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/finbook/backend/config"
	"github.com/finbook/backend/internal/infra/dependency"
	"github.com/finbook/backend/internal/integration/persistence/model"
	"github.com/finbook/backend/test/integration/mock"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("finbook", map[string]any{
			"users":                  &model.UserModel{},
			"user_profiles":          &model.ProfileModel{},
			"currencies":             &model.CurrencyModel{},
			"accounts":               &model.AccountModel{},
			"categories":             &model.CategoryModel{},
			"transactions":           &model.TransactionModel{},
			"recurring_transactions": &model.RecurringTransactionModel{},
			"budgets":                &model.BudgetModel{},
			"goals":                  &model.GoalModel{},
			"alerts":                 &model.AlertModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return c, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Given(`^a user exists with username "([^"]*)" and email "([^"]*)"$`, test.aUserExistsWithUsernameAndEmail)
	ctx.Given(`^a currency exists with code "([^"]*)"$`, test.aCurrencyExistsWithCode)
	ctx.Given(`^an account exists named "([^"]*)"$`, test.anAccountExistsNamed)
	ctx.Given(`^a category exists named "([^"]*)"$`, test.aCategoryExistsNamed)
	ctx.Given(`^a transaction exists with amount "([^"]*)" on "([^"]*)"$`, test.aTransactionExistsWithAmountOn)
	ctx.Given(`^a goal exists named "([^"]*)" with target "([^"]*)"$`, test.aGoalExistsNamedWithTarget)
	ctx.Given(`^a budget exists with amount "([^"]*)"$`, test.aBudgetExistsWithAmount)
	ctx.Given(`^an unread alert exists with message "([^"]*)"$`, test.anUnreadAlertExistsWithMessage)
	ctx.Given(`^a recurring transaction exists with frequency "([^"]*)"$`, test.aRecurringTransactionExistsWithFrequency)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn, func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) aUserExistsWithUsernameAndEmail(username, email string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Username:     username,
		Email:        email,
		PasswordHash: hashPassword("SecurePass123!"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return err
	}

	profile := &model.ProfileModel{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: "Test",
		LastName:  "User",
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(profile).Error
}

func (t *testContext) aCurrencyExistsWithCode(code string) error {
	currencyID := uuid.New()
	t.currentCurrencyID = currencyID

	now := time.Now().UTC()
	currency := &model.CurrencyModel{
		ID:        currencyID,
		Code:      code,
		Name:      code + " currency",
		Symbol:    "$",
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(currency).Error
}

func (t *testContext) anAccountExistsNamed(name string) error {
	if t.currentCurrencyID == uuid.Nil {
		if err := t.aCurrencyExistsWithCode("USD"); err != nil {
			return err
		}
	}

	accountID := uuid.New()
	t.currentAccountID = accountID

	now := time.Now().UTC()
	account := &model.AccountModel{
		ID:         accountID,
		UserID:     t.currentUserID,
		Name:       name,
		Type:       "checking",
		Balance:    decimal.NewFromInt(1000),
		CurrencyID: t.currentCurrencyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(account).Error
}

func (t *testContext) aCategoryExistsNamed(name string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	category := &model.CategoryModel{
		ID:        categoryID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(category).Error
}

func (t *testContext) aTransactionExistsWithAmountOn(amount, date string) error {
	transactionID := uuid.New()
	t.transactionIDs = append(t.transactionIDs, transactionID)

	now := time.Now().UTC()
	transaction := &model.TransactionModel{
		ID:         transactionID,
		AccountID:  t.currentAccountID,
		CategoryID: t.currentCategoryID,
		Amount:     decimal.RequireFromString(amount),
		Date:       dateOnly(date),
		Type:       "expense",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(transaction).Error
}

func (t *testContext) aGoalExistsNamedWithTarget(name, target string) error {
	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goal := &model.GoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		Name:          name,
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.Zero,
		StartDate:     dateOnly("2026-01-01"),
		EndDate:       dateOnly("2026-12-31"),
		Status:        "in_progress",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return t.db.DbConn.Create(goal).Error
}

func (t *testContext) aBudgetExistsWithAmount(amount string) error {
	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budget := &model.BudgetModel{
		ID:         budgetID,
		UserID:     t.currentUserID,
		CategoryID: t.currentCategoryID,
		Amount:     decimal.RequireFromString(amount),
		StartDate:  dateOnly("2026-01-01"),
		EndDate:    dateOnly("2026-12-31"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(budget).Error
}

func (t *testContext) anUnreadAlertExistsWithMessage(message string) error {
	alertID := uuid.New()
	t.currentAlertID = alertID

	now := time.Now().UTC()
	alert := &model.AlertModel{
		ID:          alertID,
		UserID:      t.currentUserID,
		Message:     message,
		Type:        "budget",
		TriggerDate: dateOnly("2026-06-01"),
		IsRead:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(alert).Error
}

func (t *testContext) aRecurringTransactionExistsWithFrequency(frequency string) error {
	recurringID := uuid.New()
	t.currentRecurringID = recurringID

	now := time.Now().UTC()
	recurring := &model.RecurringTransactionModel{
		ID:         recurringID,
		AccountID:  t.currentAccountID,
		CategoryID: t.currentCategoryID,
		Amount:     decimal.NewFromInt(50),
		StartDate:  dateOnly("2026-01-01"),
		Frequency:  frequency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(recurring).Error
}
