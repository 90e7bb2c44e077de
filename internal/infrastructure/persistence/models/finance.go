package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// FinancialTransactionModel is the persistence model for a ledger entry.
type FinancialTransactionModel struct {
	OwnedModel
	Date        time.Time               `gorm:"type:date;not null"`
	Type        finance.TransactionType `gorm:"type:varchar(10);not null;index"`
	Category    string                  `gorm:"type:varchar(100);not null;default:''"`
	Amount      decimal.Decimal         `gorm:"type:decimal(14,2);not null"`
	Description string                  `gorm:"type:varchar(500);not null;default:''"`
}

// TableName returns the table name for GORM
func (FinancialTransactionModel) TableName() string {
	return "financial_transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *FinancialTransactionModel) ToDomain() *finance.Transaction {
	return &finance.Transaction{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		Date:               m.Date,
		Type:               m.Type,
		Category:           m.Category,
		Amount:             m.Amount,
		Description:        m.Description,
	}
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *FinancialTransactionModel) FromDomain(t *finance.Transaction) {
	m.FromDomainOwnedAggregateRoot(t.OwnedAggregateRoot)
	m.Date = t.Date
	m.Type = t.Type
	m.Category = t.Category
	m.Amount = t.Amount
	m.Description = t.Description
}

// FinancialTransactionModelFromDomain creates a new persistence model from a domain Transaction entity.
func FinancialTransactionModelFromDomain(t *finance.Transaction) *FinancialTransactionModel {
	m := &FinancialTransactionModel{}
	m.FromDomain(t)
	return m
}
