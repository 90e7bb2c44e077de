package persistence

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/domain/task"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// FindAllForOwner returns the owner's tasks, optionally one status
func (r *GormTaskRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter task.Filter) ([]task.Task, error) {
	query := ownedDB(ctx, r.db, ownerID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var taskModels []models.TaskModel
	if err := query.Scopes(CreatedOrder).Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]task.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = *taskModels[i].ToDomain()
	}
	return tasks, nil
}

// FindByIDForOwner finds a task by ID within an owner
func (r *GormTaskRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*task.Task, error) {
	var model models.TaskModel
	if err := ownedDB(ctx, r.db, ownerID).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or fully replaces a task
func (r *GormTaskRepository) Save(ctx context.Context, t *task.Task) error {
	return r.db.WithContext(ctx).Save(models.TaskModelFromDomain(t)).Error
}

// DeleteForOwner deletes a task within an owner
func (r *GormTaskRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := ownedDB(ctx, r.db, ownerID).Delete(&models.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
