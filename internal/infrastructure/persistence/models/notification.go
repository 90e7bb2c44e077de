package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/notification"
)

// DeviceTokenModel is the persistence model for a push delivery token.
// The token itself is globally unique so a device moving between owners is re-assigned.
type DeviceTokenModel struct {
	OwnedModel
	Token      string                `gorm:"type:varchar(512);not null;uniqueIndex:idx_device_tokens_token"`
	Platform   notification.Platform `gorm:"type:varchar(10);not null;default:'web'"`
	LastSeenAt time.Time             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}

// ToDomain converts the persistence model to a domain DeviceToken entity.
func (m *DeviceTokenModel) ToDomain() *notification.DeviceToken {
	return &notification.DeviceToken{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		Token:              m.Token,
		Platform:           m.Platform,
		LastSeenAt:         m.LastSeenAt,
	}
}

// DeviceTokenModelFromDomain creates a new persistence model from a domain DeviceToken entity.
func DeviceTokenModelFromDomain(d *notification.DeviceToken) *DeviceTokenModel {
	m := &DeviceTokenModel{}
	m.FromDomainOwnedAggregateRoot(d.OwnedAggregateRoot)
	m.Token = d.Token
	m.Platform = d.Platform
	m.LastSeenAt = d.LastSeenAt
	return m
}
