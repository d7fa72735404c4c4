package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
)

// RecurringTransactionModel represents the recurring_transactions table in
// the database.
type RecurringTransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Account     *AccountModel   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    *CategoryModel  `gorm:"foreignKey:CategoryID"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_recurring_amount,amount >= 0"`
	Description *string         `gorm:"type:varchar(255)"`
	StartDate   time.Time       `gorm:"type:date;not null"`
	EndDate     *time.Time      `gorm:"type:date"`
	Frequency   string          `gorm:"type:varchar(10);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	return &entity.RecurringTransaction{
		ID:          m.ID,
		AccountID:   m.AccountID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Frequency:   entity.Frequency(m.Frequency),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecurringTransactionFromEntity creates a RecurringTransactionModel from a
// domain entity.
func RecurringTransactionFromEntity(recurring *entity.RecurringTransaction) *RecurringTransactionModel {
	return &RecurringTransactionModel{
		ID:          recurring.ID,
		AccountID:   recurring.AccountID,
		CategoryID:  recurring.CategoryID,
		Amount:      recurring.Amount,
		Description: recurring.Description,
		StartDate:   recurring.StartDate,
		EndDate:     recurring.EndDate,
		Frequency:   string(recurring.Frequency),
		CreatedAt:   recurring.CreatedAt,
		UpdatedAt:   recurring.UpdatedAt,
	}
}
