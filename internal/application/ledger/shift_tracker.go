package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShiftResponse is a running shift and the hours worked so far
type ShiftResponse struct {
	EmployeeID uuid.UUID       `json:"employee_id"`
	StartedAt  time.Time       `json:"started_at"`
	Hours      decimal.Decimal `json:"hours"`
}

// ShiftEndResponse is a finished shift with the amount posted for it
type ShiftEndResponse struct {
	EmployeeID uuid.UUID       `json:"employee_id"`
	StartedAt  time.Time       `json:"started_at"`
	EndedAt    time.Time       `json:"ended_at"`
	Hours      decimal.Decimal `json:"hours"`
	Earned     decimal.Decimal `json:"earned"`
}

// ShiftTracker toggles hourly shifts. Ending a shift publishes ShiftEnded,
// which ShiftPostingHandler turns into a salary expense.
type ShiftTracker struct {
	employeeRepo employee.EmployeeRepository
	store        employee.ShiftStore
	publisher    shared.EventPublisher
	gauge        ShiftGauge
	logger       *zap.Logger
	now          func() time.Time
}

// NewShiftTracker creates a new ShiftTracker
func NewShiftTracker(
	employeeRepo employee.EmployeeRepository,
	store employee.ShiftStore,
	publisher shared.EventPublisher,
	log *zap.Logger,
	opts ...Option,
) *ShiftTracker {
	o := buildOptions(opts)
	return &ShiftTracker{
		employeeRepo: employeeRepo,
		store:        store,
		publisher:    publisher,
		gauge:        o.gauge,
		logger:       log.Named("shifts"),
		now:          o.now,
	}
}

// Start records the shift start for an hourly employee
func (t *ShiftTracker) Start(ctx context.Context, ownerID, employeeID uuid.UUID) (*ShiftResponse, error) {
	emp, err := t.employeeRepo.FindByIDForOwner(ctx, ownerID, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsHourly() {
		return nil, employee.ErrNotHourly
	}

	shift := employee.ActiveShift{
		OwnerID:    ownerID,
		EmployeeID: employeeID,
		StartedAt:  t.now(),
	}
	if err := t.store.Begin(ctx, shift); err != nil {
		return nil, err
	}
	t.gauge.ShiftStarted()

	logger.Enrich(ctx, t.logger).Info("shift started",
		zap.String("employee_id", employeeID.String()),
		zap.Time("started_at", shift.StartedAt),
	)
	return &ShiftResponse{EmployeeID: employeeID, StartedAt: shift.StartedAt, Hours: decimal.Zero}, nil
}

// End closes the shift and publishes the earnings. The employee is loaded
// before the marker is touched, so a failed lookup leaves the shift running.
// store.End is atomic, so a concurrent End cannot post the same shift twice.
func (t *ShiftTracker) End(ctx context.Context, ownerID, employeeID uuid.UUID) (*ShiftEndResponse, error) {
	emp, err := t.employeeRepo.FindByIDForOwner(ctx, ownerID, employeeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			t.discard(ctx, ownerID, employeeID, "employee deleted")
		}
		return nil, err
	}
	if !emp.IsHourly() {
		t.discard(ctx, ownerID, employeeID, "employee no longer hourly")
		return nil, employee.ErrNotHourly
	}

	shift, err := t.store.End(ctx, ownerID, employeeID)
	if err != nil {
		return nil, err
	}
	t.gauge.ShiftEnded()
	endedAt := t.now()

	event := employee.NewShiftEndedEvent(emp, shift.StartedAt, endedAt)
	if t.publisher != nil {
		if err := t.publisher.Publish(ctx, event); err != nil {
			logger.Enrich(ctx, t.logger).Error("failed to publish shift ended event",
				zap.String("employee_id", employeeID.String()),
				zap.Error(err),
			)
		}
	}

	return &ShiftEndResponse{
		EmployeeID: employeeID,
		StartedAt:  shift.StartedAt,
		EndedAt:    endedAt,
		Hours:      hours(event.Elapsed()),
		Earned:     event.Earned,
	}, nil
}

// discard drops a shift that can no longer be paid by the hour
func (t *ShiftTracker) discard(ctx context.Context, ownerID, employeeID uuid.UUID, reason string) {
	shift, err := t.store.End(ctx, ownerID, employeeID)
	if err != nil {
		return
	}
	t.gauge.ShiftEnded()
	logger.Enrich(ctx, t.logger).Warn("shift discarded without posting",
		zap.String("employee_id", employeeID.String()),
		zap.Duration("elapsed", shift.Elapsed(t.now())),
		zap.String("reason", reason),
	)
}

// Active lists the owner's running shifts
func (t *ShiftTracker) Active(ctx context.Context, ownerID uuid.UUID) ([]ShiftResponse, error) {
	shifts, err := t.store.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := t.now()
	out := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		out[i] = ShiftResponse{EmployeeID: s.EmployeeID, StartedAt: s.StartedAt, Hours: hours(s.Elapsed(now))}
	}
	return out, nil
}

func hours(d time.Duration) decimal.Decimal {
	return decimal.NewFromFloat(d.Hours()).Round(2)
}
