package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// AlertModel represents the alerts table in the database.
type AlertModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	User        *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Message     string     `gorm:"type:varchar(255);not null"`
	Type        string     `gorm:"type:varchar(10);not null"`
	TriggerDate time.Time  `gorm:"not null;index"`
	IsRead      bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the AlertModel.
func (AlertModel) TableName() string {
	return "alerts"
}

// ToEntity converts an AlertModel to a domain Alert entity.
func (m *AlertModel) ToEntity() *entity.Alert {
	return &entity.Alert{
		ID:          m.ID,
		UserID:      m.UserID,
		Message:     m.Message,
		Type:        entity.AlertType(m.Type),
		TriggerDate: m.TriggerDate,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// AlertFromEntity creates an AlertModel from a domain Alert entity.
func AlertFromEntity(alert *entity.Alert) *AlertModel {
	return &AlertModel{
		ID:          alert.ID,
		UserID:      alert.UserID,
		Message:     alert.Message,
		Type:        string(alert.Type),
		TriggerDate: alert.TriggerDate,
		IsRead:      alert.IsRead,
		CreatedAt:   alert.CreatedAt,
		UpdatedAt:   alert.UpdatedAt,
	}
}
