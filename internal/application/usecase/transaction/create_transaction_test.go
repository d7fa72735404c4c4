package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *fakeTransactionRepo) List(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, transaction := range r.transactions {
		if filter.AccountID != nil && transaction.AccountID != *filter.AccountID {
			continue
		}
		if filter.CategoryID != nil && transaction.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Type != nil && transaction.Type != *filter.Type {
			continue
		}
		if filter.From != nil && transaction.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && transaction.Date.After(*filter.To) {
			continue
		}
		result = append(result, transaction)
	}
	return result, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	if _, ok := r.transactions[transaction.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	return nil
}

// fakeAccountRepo holds a fixed set of accounts.
type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var result []*entity.Account
	for _, account := range r.accounts {
		if account.UserID == userID {
			result = append(result, account)
		}
	}
	return result, nil
}

// fakeCategoryRepo holds a fixed set of categories.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		result = append(result, category)
	}
	return result, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

type createTransactionFixture struct {
	transactionRepo *fakeTransactionRepo
	account         *entity.Account
	category        *entity.Category
	uc              *CreateTransactionUseCase
}

func newCreateTransactionFixture() *createTransactionFixture {
	account := entity.NewAccount(uuid.New(), "Checking", "checking", decimal.NewFromInt(100), uuid.New())
	category := entity.NewCategory("Groceries", nil)

	transactionRepo := newFakeTransactionRepo()
	accountRepo := &fakeAccountRepo{accounts: map[uuid.UUID]*entity.Account{account.ID: account}}
	categoryRepo := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}}

	return &createTransactionFixture{
		transactionRepo: transactionRepo,
		account:         account,
		category:        category,
		uc:              NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo),
	}
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("creates a valid expense", func(t *testing.T) {
		f := newCreateTransactionFixture()

		output, err := f.uc.Execute(ctx, CreateTransactionInput{
			AccountID:  f.account.ID,
			CategoryID: f.category.ID,
			Amount:     decimal.NewFromFloat(42.50),
			Date:       date,
			Type:       entity.TransactionTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Type != entity.TransactionTypeExpense {
			t.Errorf("expected type expense, got %s", output.Transaction.Type)
		}
		if len(f.transactionRepo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(f.transactionRepo.transactions))
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		f := newCreateTransactionFixture()

		_, err := f.uc.Execute(ctx, CreateTransactionInput{
			AccountID:  f.account.ID,
			CategoryID: f.category.ID,
			Amount:     decimal.NewFromInt(-10),
			Date:       date,
			Type:       entity.TransactionTypeExpense,
		})
		if err == nil {
			t.Fatal("expected error for negative amount")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})

	t.Run("accepts a zero amount", func(t *testing.T) {
		f := newCreateTransactionFixture()

		_, err := f.uc.Execute(ctx, CreateTransactionInput{
			AccountID:  f.account.ID,
			CategoryID: f.category.ID,
			Amount:     decimal.Zero,
			Date:       date,
			Type:       entity.TransactionTypeIncome,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		f := newCreateTransactionFixture()

		_, err := f.uc.Execute(ctx, CreateTransactionInput{
			AccountID:  f.account.ID,
			CategoryID: f.category.ID,
			Amount:     decimal.NewFromInt(10),
			Date:       date,
			Type:       entity.TransactionType("transfer"),
		})
		if err == nil {
			t.Fatal("expected error for unknown type")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})

	t.Run("rejects a missing account", func(t *testing.T) {
		f := newCreateTransactionFixture()

		_, err := f.uc.Execute(ctx, CreateTransactionInput{
			AccountID:  uuid.New(),
			CategoryID: f.category.ID,
			Amount:     decimal.NewFromInt(10),
			Date:       date,
			Type:       entity.TransactionTypeExpense,
		})
		if err == nil {
			t.Fatal("expected error for missing account")
		}
		if domainerror.KindOf(err) != domainerror.KindNotFound {
			t.Errorf("expected kind %s, got %s", domainerror.KindNotFound, domainerror.KindOf(err))
		}
	})

	t.Run("rejects a missing category", func(t *testing.T) {
		f := newCreateTransactionFixture()

		_, err := f.uc.Execute(ctx, CreateTransactionInput{
			AccountID:  f.account.ID,
			CategoryID: uuid.New(),
			Amount:     decimal.NewFromInt(10),
			Date:       date,
			Type:       entity.TransactionTypeExpense,
		})
		if err == nil {
			t.Fatal("expected error for missing category")
		}
		if domainerror.KindOf(err) != domainerror.KindNotFound {
			t.Errorf("expected kind %s, got %s", domainerror.KindNotFound, domainerror.KindOf(err))
		}
	})
}
