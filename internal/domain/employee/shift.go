package employee

import (
	"context"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var (
	ErrShiftAlreadyStarted = shared.NewDomainError("SHIFT_ALREADY_STARTED", "A shift is already running for this employee")
	ErrShiftNotStarted     = shared.NewDomainError("SHIFT_NOT_STARTED", "No shift is running for this employee")
	ErrNotHourly           = shared.NewDomainError("NOT_HOURLY", "Shifts can only be tracked for hourly employees")
)

// ActiveShift is a running shift. At most one exists per employee.
type ActiveShift struct {
	OwnerID    uuid.UUID `json:"owner_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	StartedAt  time.Time `json:"started_at"`
}

// Elapsed returns the time worked so far
func (s ActiveShift) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// ShiftStore keeps running shifts. Begin and End must be atomic so two
// concurrent toggles cannot both start or both end the same shift.
type ShiftStore interface {
	// Begin records a new shift or returns ErrShiftAlreadyStarted
	Begin(ctx context.Context, shift ActiveShift) error
	// End removes the shift and returns it, or returns ErrShiftNotStarted
	End(ctx context.Context, ownerID, employeeID uuid.UUID) (*ActiveShift, error)
	// Find returns the running shift or ErrShiftNotStarted
	Find(ctx context.Context, ownerID, employeeID uuid.UUID) (*ActiveShift, error)
	// ListForOwner returns every running shift of the owner
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]ActiveShift, error)
}
