package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows an inventory listing. An empty Category returns all items.
type Filter struct {
	Category string
}

// ItemRepository defines the interface for inventory persistence
type ItemRepository interface {
	// FindAllForOwner returns every item of the owner matching filter
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter Filter) ([]Item, error)
	// FindByIDForOwner finds an item by ID within an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Item, error)
	// Save creates or fully replaces an item
	Save(ctx context.Context, item *Item) error
	// DeleteForOwner deletes an item within an owner
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	// ListCategories returns the distinct non-empty categories of the owner
	ListCategories(ctx context.Context, ownerID uuid.UUID) ([]string, error)
}
