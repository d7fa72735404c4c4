package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/integration/persistence/model"
)

// currencyRepository implements the adapter.CurrencyRepository interface.
type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a new currency repository instance.
func NewCurrencyRepository(db *gorm.DB) adapter.CurrencyRepository {
	return &currencyRepository{
		db: db,
	}
}

// Create persists a new currency. A duplicate code surfaces as
// ErrCurrencyCodeTaken.
func (r *currencyRepository) Create(ctx context.Context, currency *entity.Currency) error {
	result := r.db.WithContext(ctx).Create(model.CurrencyFromEntity(currency))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrCurrencyCodeTaken
		}
		return result.Error
	}
	return nil
}

// FindByCode retrieves a currency by its ISO code, case-insensitively.
func (r *currencyRepository) FindByCode(ctx context.Context, code string) (*entity.Currency, error) {
	var currencyModel model.CurrencyModel
	result := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&currencyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCurrencyNotFound
		}
		return nil, result.Error
	}
	return currencyModel.ToEntity(), nil
}

// FindAll retrieves all currencies ordered by code.
func (r *currencyRepository) FindAll(ctx context.Context) ([]*entity.Currency, error) {
	var currencyModels []model.CurrencyModel
	result := r.db.WithContext(ctx).Order("code ASC").Find(&currencyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	currencies := make([]*entity.Currency, len(currencyModels))
	for i, cm := range currencyModels {
		currencies[i] = cm.ToEntity()
	}
	return currencies, nil
}
