package notification

import (
	"context"
	"time"

	"github.com/bizdash/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// RegisterDeviceRequest registers a push delivery token
type RegisterDeviceRequest struct {
	Token    string `json:"token" binding:"required,max=4096"`
	Platform string `json:"platform" binding:"omitempty,oneof=web android ios"`
}

// DeviceResponse represents a registered token in API responses
type DeviceResponse struct {
	Token      string    `json:"token"`
	Platform   string    `json:"platform"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDeviceResponse(d *notification.DeviceToken) DeviceResponse {
	return DeviceResponse{
		Token:      d.Token,
		Platform:   string(d.Platform),
		LastSeenAt: d.LastSeenAt,
		CreatedAt:  d.CreatedAt,
	}
}

// DeviceService keeps the push tokens of each owner. Delivery is handled by
// an external service that reads these tokens.
type DeviceService struct {
	tokenRepo notification.DeviceTokenRepository
}

// NewDeviceService creates a new DeviceService
func NewDeviceService(tokenRepo notification.DeviceTokenRepository) *DeviceService {
	return &DeviceService{tokenRepo: tokenRepo}
}

// Register stores a token for the owner. Registering a known token moves it
// to the caller and refreshes its last-seen time.
func (s *DeviceService) Register(ctx context.Context, ownerID uuid.UUID, req RegisterDeviceRequest) (*DeviceResponse, error) {
	token, err := notification.NewDeviceToken(ownerID, req.Token, notification.Platform(req.Platform))
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.Upsert(ctx, token); err != nil {
		return nil, err
	}
	resp := toDeviceResponse(token)
	return &resp, nil
}

// List returns the owner's tokens
func (s *DeviceService) List(ctx context.Context, ownerID uuid.UUID) ([]DeviceResponse, error) {
	tokens, err := s.tokenRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]DeviceResponse, len(tokens))
	for i := range tokens {
		out[i] = toDeviceResponse(&tokens[i])
	}
	return out, nil
}

// Unregister removes one of the owner's tokens
func (s *DeviceService) Unregister(ctx context.Context, ownerID uuid.UUID, token string) error {
	return s.tokenRepo.DeleteForOwner(ctx, ownerID, token)
}
