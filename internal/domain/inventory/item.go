package inventory

import (
	"strings"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the quantity at or below which an item is shown as low stock.
// It is not enforced: quantities may be zero or negative.
const LowStockThreshold = 2

// Details holds the editable fields of an inventory form
type Details struct {
	Name      string
	Category  string
	Quantity  int64
	UnitPrice decimal.Decimal
	Supplier  string
}

// Item is a stocked product line
type Item struct {
	shared.OwnedAggregateRoot
	Name      string
	Category  string
	Quantity  int64
	UnitPrice decimal.Decimal
	Supplier  string
}

// NewItem creates an inventory item and raises InventoryItemCreated
func NewItem(ownerID uuid.UUID, d Details) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	item := &Item{OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID)}
	if err := item.apply(d); err != nil {
		return nil, err
	}
	item.AddDomainEvent(NewItemCreatedEvent(item))
	return item, nil
}

// Update replaces all editable fields. No event is raised.
func (i *Item) Update(d Details) error {
	if err := i.apply(d); err != nil {
		return err
	}
	i.Touch()
	return nil
}

func (i *Item) apply(d Details) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	if d.UnitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}
	i.Name = name
	i.Category = strings.TrimSpace(d.Category)
	i.Quantity = d.Quantity
	i.UnitPrice = d.UnitPrice
	i.Supplier = strings.TrimSpace(d.Supplier)
	return nil
}

// Value returns quantity × unit price
func (i *Item) Value() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// IsLowStock reports whether the quantity is at or below LowStockThreshold
func (i *Item) IsLowStock() bool {
	return i.Quantity <= LowStockThreshold
}

// SearchKeys returns the fields matched by the inventory table search
func (i Item) SearchKeys() []string {
	return []string{i.Name, i.Category, i.Supplier}
}
