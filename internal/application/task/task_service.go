package task

import (
	"context"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/domain/task"
	"github.com/google/uuid"
)

// TaskService handles the owner's to-do list
type TaskService struct {
	taskRepo task.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo task.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// List returns the owner's tasks for the requested tab, then applies the search box
func (s *TaskService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]TaskResponse, error) {
	var f task.Filter
	switch filter.Status {
	case "", "all":
	default:
		status := task.Status(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_FILTER", "Status must be all, open or closed")
		}
		f.Status = status
	}
	tasks, err := s.taskRepo.FindAllForOwner(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	return ToTaskResponses(shared.FilterBySearch(tasks, filter.Search)), nil
}

// GetByID returns one task of the owner
func (s *TaskService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*TaskResponse, error) {
	t, err := s.taskRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToTaskResponse(t)
	return &resp, nil
}

// Create creates an open task
func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, req TaskRequest) (*TaskResponse, error) {
	due, err := common.ParseOptionalDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	t, err := task.NewTask(ownerID, req.Name, due, task.Repeat(req.Repeat))
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTaskResponse(t)
	return &resp, nil
}

// Update replaces every editable field. An omitted status keeps the current one.
func (s *TaskService) Update(ctx context.Context, ownerID, id uuid.UUID, req TaskRequest) (*TaskResponse, error) {
	due, err := common.ParseOptionalDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	t, err := s.taskRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := t.Update(req.Name, due, task.Status(req.Status), task.Repeat(req.Repeat)); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTaskResponse(t)
	return &resp, nil
}

// MarkAs sets the status of a task. The returned task reflects the stored state.
func (s *TaskService) MarkAs(ctx context.Context, ownerID, id uuid.UUID, req StatusRequest) (*TaskResponse, error) {
	t, err := s.taskRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := t.MarkAs(task.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTaskResponse(t)
	return &resp, nil
}

// Delete deletes an owner's task
func (s *TaskService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.taskRepo.DeleteForOwner(ctx, ownerID, id)
}
