package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory SQLite database with the same GORM
// configuration the real connection uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.CurrencyModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.RecurringTransactionModel{},
		&model.BudgetModel{},
		&model.GoalModel{},
		&model.AlertModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCurrencyRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate code maps to the taken error", func(t *testing.T) {
		repo := NewCurrencyRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewCurrency("USD", "US Dollar", "$")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := repo.Create(ctx, entity.NewCurrency("USD", "US Dollar", "$"))
		if !errors.Is(err, domainerror.ErrCurrencyCodeTaken) {
			t.Errorf("expected ErrCurrencyCodeTaken, got %v", err)
		}
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		repo := NewCurrencyRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewCurrency("EUR", "Euro", "€")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByCode(ctx, "eur")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Code != "EUR" {
			t.Errorf("expected code EUR, got %s", found.Code)
		}
	})

	t.Run("unknown code maps to not found", func(t *testing.T) {
		repo := NewCurrencyRepository(newTestDB(t))

		_, err := repo.FindByCode(ctx, "JPY")
		if !errors.Is(err, domainerror.ErrCurrencyNotFound) {
			t.Errorf("expected ErrCurrencyNotFound, got %v", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user and profile together", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		user := entity.NewUser("alice", "alice@example.com", "hash")
		profile := entity.NewProfile(user.ID, "Alice", "Smith", nil)
		if err := repo.Create(ctx, user, profile); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.FindProfileByUserID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.FirstName != "Alice" {
			t.Errorf("expected first name Alice, got %s", stored.FirstName)
		}
	})

	t.Run("reports username and email existence", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		user := entity.NewUser("bob", "bob@example.com", "hash")
		if err := repo.Create(ctx, user, entity.NewProfile(user.ID, "Bob", "Jones", nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		taken, err := repo.ExistsByUsername(ctx, "bob")
		if err != nil || !taken {
			t.Errorf("expected username bob to exist, got taken=%v err=%v", taken, err)
		}
		taken, err = repo.ExistsByEmail(ctx, "free@example.com")
		if err != nil || taken {
			t.Errorf("expected email to be free, got taken=%v err=%v", taken, err)
		}
	})

	t.Run("delete cascades to owned rows", func(t *testing.T) {
		db := newTestDB(t)
		userRepo := NewUserRepository(db)
		currencyRepo := NewCurrencyRepository(db)
		accountRepo := NewAccountRepository(db)
		transactionRepo := NewTransactionRepository(db)
		categoryRepo := NewCategoryRepository(db)

		user := entity.NewUser("carol", "carol@example.com", "hash")
		if err := userRepo.Create(ctx, user, entity.NewProfile(user.ID, "Carol", "King", nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		currency := entity.NewCurrency("USD", "US Dollar", "$")
		if err := currencyRepo.Create(ctx, currency); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		account := entity.NewAccount(user.ID, "Checking", "checking", decimal.NewFromInt(100), currency.ID)
		if err := accountRepo.Create(ctx, account); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		category := entity.NewCategory("Groceries", nil)
		if err := categoryRepo.Create(ctx, category); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		transaction := entity.NewTransaction(account.ID, category.ID, decimal.NewFromInt(10), nil, account.CreatedAt, entity.TransactionTypeExpense)
		if err := transactionRepo.Create(ctx, transaction); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := userRepo.Delete(ctx, user.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var profiles, accounts, transactions int64
		db.Model(&model.ProfileModel{}).Count(&profiles)
		db.Model(&model.AccountModel{}).Count(&accounts)
		db.Model(&model.TransactionModel{}).Count(&transactions)
		if profiles != 0 || accounts != 0 || transactions != 0 {
			t.Errorf("expected cascade to remove owned rows, got profiles=%d accounts=%d transactions=%d", profiles, accounts, transactions)
		}
	})

	t.Run("delete of a missing user maps to not found", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		user := entity.NewUser("dave", "dave@example.com", "hash")
		err := repo.Delete(ctx, user.ID)
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name maps to the taken error", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewCategory("Groceries", nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := repo.Create(ctx, entity.NewCategory("Groceries", nil))
		if !errors.Is(err, domainerror.ErrCategoryNameTaken) {
			t.Errorf("expected ErrCategoryNameTaken, got %v", err)
		}
	})
}
