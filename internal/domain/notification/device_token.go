package notification

import (
	"context"
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Platform identifies where a push token was issued
type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// IsValid checks if the platform is a valid Platform
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWeb, PlatformAndroid, PlatformIOS:
		return true
	}
	return false
}

// DeviceToken is a push delivery token registered by an owner's browser or device.
// Delivery is handled by an external messaging service.
type DeviceToken struct {
	shared.OwnedAggregateRoot
	Token      string
	Platform   Platform
	LastSeenAt time.Time
}

// NewDeviceToken registers a token. An empty platform defaults to web.
func NewDeviceToken(ownerID uuid.UUID, token string, platform Platform) (*DeviceToken, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Device token cannot be empty")
	}
	if len(token) > 4096 {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Device token cannot exceed 4096 characters")
	}
	if platform == "" {
		platform = PlatformWeb
	}
	if !platform.IsValid() {
		return nil, shared.NewDomainError("INVALID_PLATFORM", "Platform must be web, android or ios")
	}
	d := &DeviceToken{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Token:              token,
		Platform:           platform,
	}
	d.LastSeenAt = d.CreatedAt
	return d, nil
}

// DeviceTokenRepository defines the interface for device token persistence
type DeviceTokenRepository interface {
	// Upsert stores the token, refreshing owner, platform and last-seen time if it exists
	Upsert(ctx context.Context, token *DeviceToken) error
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]DeviceToken, error)
	DeleteForOwner(ctx context.Context, ownerID uuid.UUID, token string) error
}
