package order

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error)
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Order, error)
	// ExistsByNumber reports whether the owner already has an order with this number
	ExistsByNumber(ctx context.Context, ownerID uuid.UUID, orderNumber string) (bool, error)
	Save(ctx context.Context, order *Order) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
