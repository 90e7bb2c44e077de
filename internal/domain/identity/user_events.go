package identity

import (
	"github.com/bizdash/backend/internal/domain/shared"
)

// EventTypeUserSignedUp is raised when a new user registers
const EventTypeUserSignedUp = "UserSignedUp"

// UserSignedUpEvent is raised when a new user registers
type UserSignedUpEvent struct {
	shared.BaseDomainEvent
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
}

// EventType returns the event type name
func (e *UserSignedUpEvent) EventType() string {
	return EventTypeUserSignedUp
}

// NewUserSignedUpEvent creates a new UserSignedUpEvent
func NewUserSignedUpEvent(u *User) *UserSignedUpEvent {
	return &UserSignedUpEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserSignedUp, "User", u.ID, u.ID),
		Email:           u.Email,
		BusinessName:    u.BusinessName,
	}
}
