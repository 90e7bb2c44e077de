package models

import (
	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryItemModel is the persistence model for the inventory Item aggregate root.
type InventoryItemModel struct {
	OwnedModel
	Name      string          `gorm:"type:varchar(200);not null"`
	Category  string          `gorm:"type:varchar(100);not null;default:'';index"`
	Quantity  int64           `gorm:"not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Supplier  string          `gorm:"type:varchar(200);not null;default:''"`
}

// TableName returns the table name for GORM
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *InventoryItemModel) ToDomain() *inventory.Item {
	return &inventory.Item{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		Name:               m.Name,
		Category:           m.Category,
		Quantity:           m.Quantity,
		UnitPrice:          m.UnitPrice,
		Supplier:           m.Supplier,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *InventoryItemModel) FromDomain(i *inventory.Item) {
	m.FromDomainOwnedAggregateRoot(i.OwnedAggregateRoot)
	m.Name = i.Name
	m.Category = i.Category
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.Supplier = i.Supplier
}

// InventoryItemModelFromDomain creates a new persistence model from a domain Item entity.
func InventoryItemModelFromDomain(i *inventory.Item) *InventoryItemModel {
	m := &InventoryItemModel{}
	m.FromDomain(i)
	return m
}
