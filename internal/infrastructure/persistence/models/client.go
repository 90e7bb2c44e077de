package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/client"
)

// ClientModel is the persistence model for the Client aggregate root.
type ClientModel struct {
	OwnedModel
	Name      string    `gorm:"type:varchar(200);not null"`
	Phone     string    `gorm:"type:varchar(50);not null;default:''"`
	Email     string    `gorm:"type:varchar(254);not null;default:''"`
	DateAdded time.Time `gorm:"type:date;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *client.Client {
	return &client.Client{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		Name:               m.Name,
		Phone:              m.Phone,
		Email:              m.Email,
		DateAdded:          m.DateAdded,
		IsActive:           m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *client.Client) {
	m.FromDomainOwnedAggregateRoot(c.OwnedAggregateRoot)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.DateAdded = c.DateAdded
	m.IsActive = c.IsActive
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *client.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
