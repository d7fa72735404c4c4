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

// alertRepository implements the adapter.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository instance.
func NewAlertRepository(db *gorm.DB) adapter.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// Create persists a new alert.
func (r *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	result := r.db.WithContext(ctx).Create(model.AlertFromEntity(alert))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an alert by its ID.
func (r *alertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertModel model.AlertModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&alertModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAlertNotFound
		}
		return nil, result.Error
	}
	return alertModel.ToEntity(), nil
}

// FindByUserID retrieves a user's alerts, optionally restricted to unread
// ones, newest trigger date first.
func (r *alertRepository) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Alert, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var alertModels []model.AlertModel
	result := query.Order("trigger_date DESC").Find(&alertModels)
	if result.Error != nil {
		return nil, result.Error
	}

	alerts := make([]*entity.Alert, len(alertModels))
	for i, am := range alertModels {
		alerts[i] = am.ToEntity()
	}
	return alerts, nil
}

// Update updates an existing alert.
func (r *alertRepository) Update(ctx context.Context, alert *entity.Alert) error {
	result := r.db.WithContext(ctx).Save(model.AlertFromEntity(alert))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an alert.
func (r *alertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AlertModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAlertNotFound
	}
	return nil
}
