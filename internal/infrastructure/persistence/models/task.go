package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/task"
)

// TaskModel is the persistence model for the Task aggregate root.
type TaskModel struct {
	OwnedModel
	Name    string      `gorm:"type:varchar(300);not null"`
	DueDate *time.Time  `gorm:"column:due_date"`
	Status  task.Status `gorm:"type:varchar(10);not null;default:'open'"`
	Repeat  task.Repeat `gorm:"type:varchar(10);not null;default:'none'"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task entity.
func (m *TaskModel) ToDomain() *task.Task {
	return &task.Task{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		Name:               m.Name,
		DueDate:            m.DueDate,
		Status:             m.Status,
		Repeat:             m.Repeat,
	}
}

// FromDomain populates the persistence model from a domain Task entity.
func (m *TaskModel) FromDomain(t *task.Task) {
	m.FromDomainOwnedAggregateRoot(t.OwnedAggregateRoot)
	m.Name = t.Name
	m.DueDate = t.DueDate
	m.Status = t.Status
	m.Repeat = t.Repeat
}

// TaskModelFromDomain creates a new persistence model from a domain Task entity.
func TaskModelFromDomain(t *task.Task) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t)
	return m
}
