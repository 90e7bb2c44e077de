package finance

import (
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType carries the sign of a ledger entry
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid checks if the type is a valid TransactionType
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// Categories used by automatic postings
const (
	CategorySalary    = "Salary"
	CategoryInventory = "Inventory"
)

// Transaction is a single ledger entry. Amount is never negative;
// the type decides whether it adds to or subtracts from totals.
type Transaction struct {
	shared.OwnedAggregateRoot
	Date        time.Time
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
}

// NewTransaction creates a new ledger entry. A zero date defaults to today.
func NewTransaction(
	ownerID uuid.UUID,
	date time.Time,
	txType TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
) (*Transaction, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	tx := &Transaction{OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID)}
	if err := tx.apply(date, txType, category, amount, description); err != nil {
		return nil, err
	}
	return tx, nil
}

// Update replaces all editable fields
func (t *Transaction) Update(date time.Time, txType TransactionType, category string, amount decimal.Decimal, description string) error {
	if err := t.apply(date, txType, category, amount, description); err != nil {
		return err
	}
	t.Touch()
	return nil
}

func (t *Transaction) apply(date time.Time, txType TransactionType, category string, amount decimal.Decimal, description string) error {
	if !txType.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Transaction type must be income or expense")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	if date.IsZero() {
		date = time.Now()
	}
	t.Date = DateOnly(date)
	t.Type = txType
	t.Category = strings.TrimSpace(category)
	t.Amount = amount
	t.Description = strings.TrimSpace(description)
	return nil
}

// IsIncome reports whether the entry is income
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// SignedAmount is +amount for income and -amount for expense
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// SearchKeys returns the fields matched by the finances table search
func (t Transaction) SearchKeys() []string {
	return []string{t.Category, t.Description}
}

// DateOnly truncates a timestamp to its calendar date in its own location
func DateOnly(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
