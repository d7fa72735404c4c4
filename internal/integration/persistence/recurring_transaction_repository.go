package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/integration/persistence/model"
)

// recurringTransactionRepository implements the
// adapter.RecurringTransactionRepository interface.
type recurringTransactionRepository struct {
	db *gorm.DB
}

// NewRecurringTransactionRepository creates a new recurring transaction
// repository instance.
func NewRecurringTransactionRepository(db *gorm.DB) adapter.RecurringTransactionRepository {
	return &recurringTransactionRepository{
		db: db,
	}
}

// Create persists a new recurring transaction.
func (r *recurringTransactionRepository) Create(ctx context.Context, recurring *entity.RecurringTransaction) error {
	result := r.db.WithContext(ctx).Create(model.RecurringTransactionFromEntity(recurring))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring transaction by its ID.
func (r *recurringTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTransaction, error) {
	var recurringModel model.RecurringTransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recurringModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringTransactionNotFound
		}
		return nil, result.Error
	}
	return recurringModel.ToEntity(), nil
}

// FindByAccountID retrieves all recurring transactions on an account.
func (r *recurringTransactionRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var recurringModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("start_date DESC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecurringEntities(recurringModels), nil
}

// FindByUserID retrieves all recurring transactions on accounts owned by the
// given user.
func (r *recurringTransactionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var recurringModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = recurring_transactions.account_id").
		Where("accounts.user_id = ?", userID).
		Order("recurring_transactions.start_date DESC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecurringEntities(recurringModels), nil
}

// Update updates an existing recurring transaction.
func (r *recurringTransactionRepository) Update(ctx context.Context, recurring *entity.RecurringTransaction) error {
	result := r.db.WithContext(ctx).Save(model.RecurringTransactionFromEntity(recurring))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a recurring transaction.
func (r *recurringTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringTransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringTransactionNotFound
	}
	return nil
}

func toRecurringEntities(recurringModels []model.RecurringTransactionModel) []*entity.RecurringTransaction {
	recurring := make([]*entity.RecurringTransaction, len(recurringModels))
	for i, rm := range recurringModels {
		recurring[i] = rm.ToEntity()
	}
	return recurring
}
