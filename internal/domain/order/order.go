package order

import (
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the fulfilment stage of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Details holds the editable fields of an order form
type Details struct {
	Client      string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	Status      Status
}

// Order is a sale to a client. Client is free text, not a reference.
type Order struct {
	shared.OwnedAggregateRoot
	OrderNumber string
	Client      string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	Status      Status
}

// NewOrder creates an order with a pre-generated order number
func NewOrder(ownerID uuid.UUID, orderNumber string, d Details) (*Order, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if d.Status == "" {
		d.Status = StatusPending
	}
	o := &Order{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		OrderNumber:        orderNumber,
	}
	if err := o.apply(d); err != nil {
		return nil, err
	}
	return o, nil
}

// Update replaces all editable fields. The order number never changes.
func (o *Order) Update(d Details) error {
	if d.Status == "" {
		d.Status = o.Status
	}
	if err := o.apply(d); err != nil {
		return err
	}
	o.Touch()
	return nil
}

func (o *Order) apply(d Details) error {
	client := strings.TrimSpace(d.Client)
	if client == "" {
		return shared.NewDomainError("INVALID_CLIENT", "Order client cannot be empty")
	}
	if d.TotalAmount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot be negative")
	}
	if !d.Status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Order status must be pending, processing or completed")
	}
	if d.OrderDate.IsZero() {
		d.OrderDate = time.Now()
	}
	o.Client = client
	o.OrderDate = d.OrderDate
	o.TotalAmount = d.TotalAmount
	o.Status = d.Status
	return nil
}

// SearchKeys returns the fields matched by the orders table search
func (o Order) SearchKeys() []string {
	return []string{o.OrderNumber, o.Client}
}

// StatusCounts is the number of orders per status
type StatusCounts struct {
	Pending    int
	Processing int
	Completed  int
}

// CountByStatus tallies orders by status
func CountByStatus(orders []Order) StatusCounts {
	var c StatusCounts
	for i := range orders {
		switch orders[i].Status {
		case StatusPending:
			c.Pending++
		case StatusProcessing:
			c.Processing++
		case StatusCompleted:
			c.Completed++
		}
	}
	return c
}
