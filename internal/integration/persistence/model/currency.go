package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finbook/backend/internal/domain/entity"
)

// CurrencyModel represents the currencies table in the database.
type CurrencyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:char(3);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Symbol    string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CurrencyModel.
func (CurrencyModel) TableName() string {
	return "currencies"
}

// ToEntity converts a CurrencyModel to a domain Currency entity.
func (m *CurrencyModel) ToEntity() *entity.Currency {
	return &entity.Currency{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Symbol:    m.Symbol,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CurrencyFromEntity creates a CurrencyModel from a domain Currency entity.
func CurrencyFromEntity(currency *entity.Currency) *CurrencyModel {
	return &CurrencyModel{
		ID:        currency.ID,
		Code:      currency.Code,
		Name:      currency.Name,
		Symbol:    currency.Symbol,
		CreatedAt: currency.CreatedAt,
		UpdatedAt: currency.UpdatedAt,
	}
}
