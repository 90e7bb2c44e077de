package finance

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows a ledger listing. An empty Type returns both income and expense.
type Filter struct {
	Type TransactionType
}

// TransactionRepository defines the interface for ledger persistence
type TransactionRepository interface {
	// FindAllForOwner returns every ledger entry of the owner matching filter
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter Filter) ([]Transaction, error)
	// FindByIDForOwner finds an entry by ID within an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	// Save creates or fully replaces an entry
	Save(ctx context.Context, tx *Transaction) error
	// DeleteForOwner deletes an entry within an owner
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
