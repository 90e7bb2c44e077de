package inventory

import (
	"time"

	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemRequest is the body of create and update. Quantity may be zero or
// negative after a stock correction.
type ItemRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	Category  string          `json:"category" binding:"max=100"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Supplier  string          `json:"supplier" binding:"max=200"`
}

func (r ItemRequest) details() inventory.Details {
	return inventory.Details{
		Name:      r.Name,
		Category:  r.Category,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Supplier:  r.Supplier,
	}
}

// ListFilter narrows the inventory table
type ListFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// ItemResponse represents an inventory item in API responses
type ItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Supplier  string          `json:"supplier"`
	Value     decimal.Decimal `json:"value"`
	LowStock  bool            `json:"low_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToItemResponse converts a domain Item to its response DTO
func ToItemResponse(i *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:        i.ID,
		OwnerID:   i.OwnerID,
		Name:      i.Name,
		Category:  i.Category,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		Supplier:  i.Supplier,
		Value:     i.Value(),
		LowStock:  i.IsLowStock(),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ToItemResponses converts a slice of domain Items
func ToItemResponses(items []inventory.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i])
	}
	return out
}
