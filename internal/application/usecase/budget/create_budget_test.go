package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// fakeBudgetRepo is an in-memory BudgetRepository.
type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *budget
	return &copied, nil
}

func (r *fakeBudgetRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var result []*entity.Budget
	for _, budget := range r.budgets {
		if budget.UserID == userID {
			result = append(result, budget)
		}
	}
	return result, nil
}

func (r *fakeBudgetRepo) FindByCategoryID(_ context.Context, categoryID uuid.UUID) ([]*entity.Budget, error) {
	var result []*entity.Budget
	for _, budget := range r.budgets {
		if budget.CategoryID == categoryID {
			result = append(result, budget)
		}
	}
	return result, nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	if _, ok := r.budgets[budget.ID]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.budgets[id]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	delete(r.budgets, id)
	return nil
}

// fakeUserRepo knows a single user.
type fakeUserRepo struct {
	userID uuid.UUID
}

func (r *fakeUserRepo) Create(_ context.Context, _ *entity.User, _ *entity.Profile) error {
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if id != r.userID {
		return nil, domainerror.ErrUserNotFound
	}
	return &entity.User{ID: id}, nil
}

func (r *fakeUserRepo) FindProfileByUserID(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

// fakeCategoryRepo knows a single category.
type fakeCategoryRepo struct {
	categoryID uuid.UUID
}

func (r *fakeCategoryRepo) Create(_ context.Context, _ *entity.Category) error {
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if id != r.categoryID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return &entity.Category{ID: id, Name: "Groceries"}, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, _ *entity.Category) error {
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	newUseCase := func() (*CreateBudgetUseCase, *fakeBudgetRepo) {
		repo := newFakeBudgetRepo()
		uc := NewCreateBudgetUseCase(repo, &fakeUserRepo{userID: userID}, &fakeCategoryRepo{categoryID: categoryID})
		return uc, repo
	}

	t.Run("creates a valid budget", func(t *testing.T) {
		uc, repo := newUseCase()

		output, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:     userID,
			CategoryID: categoryID,
			Amount:     decimal.NewFromInt(300),
			StartDate:  start,
			EndDate:    end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Budget.Amount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected amount 300, got %s", output.Budget.Amount)
		}
		if len(repo.budgets) != 1 {
			t.Errorf("expected 1 stored budget, got %d", len(repo.budgets))
		}
	})

	t.Run("accepts a single day period", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:     userID,
			CategoryID: categoryID,
			Amount:     decimal.NewFromInt(10),
			StartDate:  start,
			EndDate:    start,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects an end date before the start date", func(t *testing.T) {
		uc, repo := newUseCase()

		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:     userID,
			CategoryID: categoryID,
			Amount:     decimal.NewFromInt(300),
			StartDate:  end,
			EndDate:    start,
		})
		if err == nil {
			t.Fatal("expected error for inverted period")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
		if len(repo.budgets) != 0 {
			t.Errorf("expected no stored budgets, got %d", len(repo.budgets))
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:     userID,
			CategoryID: categoryID,
			Amount:     decimal.NewFromInt(-50),
			StartDate:  start,
			EndDate:    end,
		})
		if err == nil {
			t.Fatal("expected error for negative amount")
		}
		if domainerror.KindOf(err) != domainerror.KindInvalid {
			t.Errorf("expected kind %s, got %s", domainerror.KindInvalid, domainerror.KindOf(err))
		}
	})

	t.Run("rejects a missing user", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:     uuid.New(),
			CategoryID: categoryID,
			Amount:     decimal.NewFromInt(300),
			StartDate:  start,
			EndDate:    end,
		})
		if err == nil {
			t.Fatal("expected error for missing user")
		}
		if domainerror.KindOf(err) != domainerror.KindNotFound {
			t.Errorf("expected kind %s, got %s", domainerror.KindNotFound, domainerror.KindOf(err))
		}
	})

	t.Run("rejects a missing category", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:     userID,
			CategoryID: uuid.New(),
			Amount:     decimal.NewFromInt(300),
			StartDate:  start,
			EndDate:    end,
		})
		if err == nil {
			t.Fatal("expected error for missing category")
		}
		if domainerror.KindOf(err) != domainerror.KindNotFound {
			t.Errorf("expected kind %s, got %s", domainerror.KindNotFound, domainerror.KindOf(err))
		}
	})
}
