package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// OwnedModel provides common persistence fields for owner-scoped aggregate roots.
type OwnedModel struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// FromDomainOwnedAggregateRoot populates OwnedModel from a domain OwnedAggregateRoot
func (m *OwnedModel) FromDomainOwnedAggregateRoot(a shared.OwnedAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.OwnerID = a.OwnerID
}

// ToOwnedAggregateRoot rebuilds the domain root. Pending events are never persisted.
func (m *OwnedModel) ToOwnedAggregateRoot() shared.OwnedAggregateRoot {
	return shared.OwnedAggregateRoot{
		BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: m.BaseModel.ToDomain()},
		OwnerID:           m.OwnerID,
	}
}

// All returns every model in dependency order, for AutoMigrate
func All() []any {
	return []any{
		&UserModel{},
		&ClientModel{},
		&EmployeeModel{},
		&FinancialTransactionModel{},
		&InventoryItemModel{},
		&TaskModel{},
		&OrderModel{},
		&DeviceTokenModel{},
	}
}
