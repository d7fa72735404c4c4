package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	User       *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Type       string          `gorm:"type:varchar(255);not null"`
	Balance    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00"`
	CurrencyID uuid.UUID       `gorm:"type:uuid;not null"`
	Currency   *CurrencyModel  `gorm:"foreignKey:CurrencyID"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Type:       m.Type,
		Balance:    m.Balance,
		CurrencyID: m.CurrencyID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:         account.ID,
		UserID:     account.UserID,
		Name:       account.Name,
		Type:       account.Type,
		Balance:    account.Balance,
		CurrencyID: account.CurrencyID,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}
