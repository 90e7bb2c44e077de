package finance

import (
	"time"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the body of create and update
type TransactionRequest struct {
	Date        string          `json:"date" binding:"omitempty,bizdate"`
	Type        string          `json:"type" binding:"required,transaction_type"`
	Category    string          `json:"category" binding:"max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"max=500"`
}

// ListFilter narrows the finances table
type ListFilter struct {
	Type   string `form:"type" binding:"omitempty,oneof=all income expense"`
	Search string `form:"search"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SummaryResponse holds the ledger totals
type SummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// ToTransactionResponse converts a domain Transaction to its response DTO
func ToTransactionResponse(tx *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		OwnerID:     tx.OwnerID,
		Date:        common.FormatDate(tx.Date),
		Type:        tx.Type.String(),
		Category:    tx.Category,
		Amount:      tx.Amount,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain Transactions
func ToTransactionResponses(txs []finance.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = ToTransactionResponse(&txs[i])
	}
	return out
}
