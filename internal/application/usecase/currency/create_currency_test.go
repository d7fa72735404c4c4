package currency

import (
	"context"
	"strings"
	"testing"

	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// fakeCurrencyRepo is an in-memory CurrencyRepository keyed by uppercase
// code, mirroring the unique index on the real table.
type fakeCurrencyRepo struct {
	currencies map[string]*entity.Currency
}

func newFakeCurrencyRepo() *fakeCurrencyRepo {
	return &fakeCurrencyRepo{currencies: make(map[string]*entity.Currency)}
}

func (r *fakeCurrencyRepo) Create(_ context.Context, currency *entity.Currency) error {
	if _, ok := r.currencies[currency.Code]; ok {
		return domainerror.ErrCurrencyCodeTaken
	}
	r.currencies[currency.Code] = currency
	return nil
}

func (r *fakeCurrencyRepo) FindByCode(_ context.Context, code string) (*entity.Currency, error) {
	currency, ok := r.currencies[strings.ToUpper(code)]
	if !ok {
		return nil, domainerror.ErrCurrencyNotFound
	}
	return currency, nil
}

func (r *fakeCurrencyRepo) FindAll(_ context.Context) ([]*entity.Currency, error) {
	result := make([]*entity.Currency, 0, len(r.currencies))
	for _, currency := range r.currencies {
		result = append(result, currency)
	}
	return result, nil
}

func TestCreateCurrencyUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the code to uppercase", func(t *testing.T) {
		repo := newFakeCurrencyRepo()
		uc := NewCreateCurrencyUseCase(repo)

		output, err := uc.Execute(ctx, CreateCurrencyInput{
			Code:   "usd",
			Name:   "US Dollar",
			Symbol: "$",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Currency.Code != "USD" {
			t.Errorf("expected code USD, got %s", output.Currency.Code)
		}
	})

	t.Run("treats differently cased duplicates as one currency", func(t *testing.T) {
		repo := newFakeCurrencyRepo()
		uc := NewCreateCurrencyUseCase(repo)

		if _, err := uc.Execute(ctx, CreateCurrencyInput{Code: "USD", Name: "US Dollar", Symbol: "$"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(ctx, CreateCurrencyInput{Code: "usd", Name: "US Dollar", Symbol: "$"})
		if err == nil {
			t.Fatal("expected error for duplicate code")
		}
		if domainerror.KindOf(err) != domainerror.KindConflict {
			t.Errorf("expected kind %s, got %s", domainerror.KindConflict, domainerror.KindOf(err))
		}
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		repo := newFakeCurrencyRepo()
		uc := NewCreateCurrencyUseCase(repo)

		for _, code := range []string{"", "US", "USDX", "U5D", "US$"} {
			_, err := uc.Execute(ctx, CreateCurrencyInput{Code: code, Name: "Bad", Symbol: "?"})
			if err == nil {
				t.Errorf("expected error for code %q", code)
				continue
			}
			if domainerror.KindOf(err) != domainerror.KindInvalid {
				t.Errorf("code %q: expected kind %s, got %s", code, domainerror.KindInvalid, domainerror.KindOf(err))
			}
		}
	})
}

func TestGetCurrencyUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("finds a currency regardless of case", func(t *testing.T) {
		repo := newFakeCurrencyRepo()
		if _, err := NewCreateCurrencyUseCase(repo).Execute(ctx, CreateCurrencyInput{Code: "USD", Name: "US Dollar", Symbol: "$"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewGetCurrencyUseCase(repo)
		output, err := uc.Execute(ctx, GetCurrencyInput{Code: "usd"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Currency.Code != "USD" {
			t.Errorf("expected code USD, got %s", output.Currency.Code)
		}
	})

	t.Run("returns not found for an unknown code", func(t *testing.T) {
		repo := newFakeCurrencyRepo()
		uc := NewGetCurrencyUseCase(repo)

		_, err := uc.Execute(ctx, GetCurrencyInput{Code: "EUR"})
		if err == nil {
			t.Fatal("expected error for unknown code")
		}
		if domainerror.KindOf(err) != domainerror.KindNotFound {
			t.Errorf("expected kind %s, got %s", domainerror.KindNotFound, domainerror.KindOf(err))
		}
	})
}
