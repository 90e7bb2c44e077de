package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
// order_number is indexed but not unique.
type OrderModel struct {
	OwnedModel
	OrderNumber string          `gorm:"type:varchar(20);not null;index:idx_orders_owner_number"`
	Client      string          `gorm:"type:varchar(200);not null;default:''"`
	OrderDate   time.Time       `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status      order.Status    `gorm:"type:varchar(12);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *order.Order {
	return &order.Order{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		OrderNumber:        m.OrderNumber,
		Client:             m.Client,
		OrderDate:          m.OrderDate,
		TotalAmount:        m.TotalAmount,
		Status:             m.Status,
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainOwnedAggregateRoot(o.OwnedAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.Client = o.Client
	m.OrderDate = o.OrderDate
	m.TotalAmount = o.TotalAmount
	m.Status = o.Status
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
