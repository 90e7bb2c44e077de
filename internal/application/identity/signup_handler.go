package identity

import (
	"context"
	"fmt"

	"github.com/bizdash/backend/internal/domain/identity"
	"github.com/bizdash/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PendingApprovalHandler tells operators that a new account waits for
// `bizctl users approve`.
type PendingApprovalHandler struct {
	logger *zap.Logger
}

// NewPendingApprovalHandler creates a new handler for UserSignedUp events
func NewPendingApprovalHandler(logger *zap.Logger) *PendingApprovalHandler {
	return &PendingApprovalHandler{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *PendingApprovalHandler) EventTypes() []string {
	return []string{identity.EventTypeUserSignedUp}
}

// Handle processes a UserSignedUpEvent
func (h *PendingApprovalHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	signedUp, ok := event.(*identity.UserSignedUpEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			identity.EventTypeUserSignedUp, event.EventType())
	}
	h.logger.Warn("new account awaiting approval",
		zap.String("user_id", signedUp.AggregateID().String()),
		zap.String("email", signedUp.Email),
		zap.String("business_name", signedUp.BusinessName),
	)
	return nil
}
