package order

import (
	"time"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRequest is the body of create and update. The order number is
// always generated by the server.
type OrderRequest struct {
	Client      string          `json:"client" binding:"required,min=1,max=200"`
	OrderDate   string          `json:"order_date" binding:"omitempty,bizdate"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status" binding:"omitempty,order_status"`
}

// ListFilter narrows the orders table
type ListFilter struct {
	Search string `form:"search"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	OrderNumber string          `json:"order_number"`
	Client      string          `json:"client"`
	OrderDate   string          `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToOrderResponse converts a domain Order to its response DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		OwnerID:     o.OwnerID,
		OrderNumber: o.OrderNumber,
		Client:      o.Client,
		OrderDate:   common.FormatDate(o.OrderDate),
		TotalAmount: o.TotalAmount,
		Status:      o.Status.String(),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain Orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}
