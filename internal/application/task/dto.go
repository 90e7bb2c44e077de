package task

import (
	"time"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/task"
	"github.com/google/uuid"
)

// TaskRequest is the body of create and update. Status is ignored on create.
type TaskRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=300"`
	DueDate string `json:"due_date" binding:"omitempty,bizdate"`
	Status  string `json:"status" binding:"omitempty,task_status"`
	Repeat  string `json:"repeat" binding:"omitempty,task_repeat"`
}

// StatusRequest is the body of the mark-as action
type StatusRequest struct {
	Status string `json:"status" binding:"required,task_status"`
}

// ListFilter narrows the tasks table
type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=all open closed"`
	Search string `form:"search"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	DueDate   *string   `json:"due_date"`
	Status    string    `json:"status"`
	Repeat    string    `json:"repeat"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTaskResponse converts a domain Task to its response DTO
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Name:      t.Name,
		Status:    t.Status.String(),
		Repeat:    string(t.Repeat),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.DueDate != nil {
		due := common.FormatDate(*t.DueDate)
		resp.DueDate = &due
	}
	return resp
}

// ToTaskResponses converts a slice of domain Tasks
func ToTaskResponses(tasks []task.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = ToTaskResponse(&tasks[i])
	}
	return out
}
