package task

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows a task listing. An empty Status returns all tasks.
type Filter struct {
	Status Status
}

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter Filter) ([]Task, error)
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Task, error)
	Save(ctx context.Context, task *Task) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
