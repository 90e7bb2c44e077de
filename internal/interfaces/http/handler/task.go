package handler

import (
	"github.com/bizdash/backend/internal/application/task"
	"github.com/gin-gonic/gin"
)

// TaskHandler handles the owner's to-do list
type TaskHandler struct {
	BaseHandler
	taskService *task.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *task.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List godoc
// @ID           listTasks
// @Summary      List tasks
// @Description  Oldest first
// @Tags         tasks
// @Produce      json
// @Param        status query string false "all, open or closed" Enums(all, open, closed)
// @Param        search query string false "Search over the task name"
// @Success      200 {object} APIResponse[[]task.TaskResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var filter task.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	tasks, err := h.taskService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tasks)
}

// GetByID godoc
// @ID           getTask
// @Summary      Get task
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Success      200 {object} APIResponse[task.TaskResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "task")
	if !ok {
		return
	}

	resp, err := h.taskService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @ID           createTask
// @Summary      Create task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body task.TaskRequest true "Task"
// @Success      201 {object} APIResponse[task.TaskResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var req task.TaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.taskService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @ID           updateTask
// @Summary      Update task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Param        request body task.TaskRequest true "Task"
// @Success      200 {object} APIResponse[task.TaskResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "task")
	if !ok {
		return
	}
	var req task.TaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.taskService.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkAs godoc
// @ID           setTaskStatus
// @Summary      Open or close a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Param        request body task.StatusRequest true "New status"
// @Success      200 {object} APIResponse[task.TaskResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id}/status [put]
func (h *TaskHandler) MarkAs(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "task")
	if !ok {
		return
	}
	var req task.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.taskService.MarkAs(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteTask
// @Summary      Delete task
// @Tags         tasks
// @Param        id path string true "Task ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "task")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
