package employee

import (
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event type constants
const (
	EventTypeEmployeeSaved = "EmployeeSaved"
	EventTypeShiftEnded    = "ShiftEnded"
)

// EmployeeSavedEvent is raised each time an employee is created or updated
type EmployeeSavedEvent struct {
	shared.BaseDomainEvent
	EmployeeID    uuid.UUID       `json:"employee_id"`
	Name          string          `json:"name"`
	SalaryType    SalaryType      `json:"salary_type"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	Created       bool            `json:"created"`
}

// EventType returns the event type name
func (e *EmployeeSavedEvent) EventType() string {
	return EventTypeEmployeeSaved
}

// NewEmployeeSavedEvent creates a new EmployeeSavedEvent
func NewEmployeeSavedEvent(emp *Employee, created bool) *EmployeeSavedEvent {
	return &EmployeeSavedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmployeeSaved, "Employee", emp.ID, emp.OwnerID),
		EmployeeID:      emp.ID,
		Name:            emp.Name,
		SalaryType:      emp.SalaryType,
		MonthlySalary:   emp.MonthlySalary,
		HourlyRate:      emp.HourlyRate,
		Created:         created,
	}
}

// ShiftEndedEvent is raised when an hourly employee's shift is toggled off
type ShiftEndedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID       `json:"employee_id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	StartedAt  time.Time       `json:"started_at"`
	EndedAt    time.Time       `json:"ended_at"`
	Earned     decimal.Decimal `json:"earned"`
}

// EventType returns the event type name
func (e *ShiftEndedEvent) EventType() string {
	return EventTypeShiftEnded
}

// Elapsed returns the shift length
func (e *ShiftEndedEvent) Elapsed() time.Duration {
	return e.EndedAt.Sub(e.StartedAt)
}

// NewShiftEndedEvent creates a new ShiftEndedEvent with earnings computed from the employee's rate
func NewShiftEndedEvent(emp *Employee, startedAt, endedAt time.Time) *ShiftEndedEvent {
	return &ShiftEndedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShiftEnded, "Employee", emp.ID, emp.OwnerID),
		EmployeeID:      emp.ID,
		Name:            emp.Name,
		HourlyRate:      emp.HourlyRate,
		StartedAt:       startedAt,
		EndedAt:         endedAt,
		Earned:          emp.EarningsFor(endedAt.Sub(startedAt)),
	}
}
