package task

import (
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents whether a task is still pending
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Repeat is the stored recurrence cadence. Nothing acts on it.
type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"
	RepeatYearly  Repeat = "yearly"
)

// IsValid checks if the cadence is a valid Repeat
func (r Repeat) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	}
	return false
}

// Task is a to-do item with a due date
type Task struct {
	shared.OwnedAggregateRoot
	Name    string
	DueDate *time.Time
	Status  Status
	Repeat  Repeat
}

// NewTask creates an open task
func NewTask(ownerID uuid.UUID, name string, dueDate *time.Time, repeat Repeat) (*Task, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	t := &Task{OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID)}
	if err := t.apply(name, dueDate, StatusOpen, repeat); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces all editable fields. An empty status keeps the current one.
func (t *Task) Update(name string, dueDate *time.Time, status Status, repeat Repeat) error {
	if status == "" {
		status = t.Status
	}
	if err := t.apply(name, dueDate, status, repeat); err != nil {
		return err
	}
	t.Touch()
	return nil
}

// MarkAs sets the task status
func (t *Task) MarkAs(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Task status must be open or closed")
	}
	t.Status = status
	t.Touch()
	return nil
}

// IsOpen reports whether the task is open
func (t *Task) IsOpen() bool {
	return t.Status == StatusOpen
}

func (t *Task) apply(name string, dueDate *time.Time, status Status, repeat Repeat) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Task name cannot be empty")
	}
	if len(name) > 300 {
		return shared.NewDomainError("INVALID_NAME", "Task name cannot exceed 300 characters")
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Task status must be open or closed")
	}
	if repeat == "" {
		repeat = RepeatNone
	}
	if !repeat.IsValid() {
		return shared.NewDomainError("INVALID_REPEAT", "Repeat must be none, daily, weekly, monthly or yearly")
	}
	t.Name = name
	t.DueDate = dueDate
	t.Status = status
	t.Repeat = repeat
	return nil
}

// SearchKeys returns the fields matched by the tasks table search
func (t Task) SearchKeys() []string {
	return []string{t.Name}
}
