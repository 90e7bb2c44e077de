package inventory

import (
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventTypeItemCreated is the event type raised for new inventory items
const EventTypeItemCreated = "InventoryItemCreated"

// ItemCreatedEvent is raised only when an inventory item is created, never on edit
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	ItemID    uuid.UUID       `json:"item_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// EventType returns the event type name
func (e *ItemCreatedEvent) EventType() string {
	return EventTypeItemCreated
}

// PurchaseAmount returns quantity × unit price of the new item
func (e *ItemCreatedEvent) PurchaseAmount() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(e.Quantity))
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, "InventoryItem", item.ID, item.OwnerID),
		ItemID:          item.ID,
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
	}
}
