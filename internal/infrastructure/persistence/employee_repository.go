package persistence

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindAllForOwner returns every employee of the owner
func (r *GormEmployeeRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]employee.Employee, error) {
	var employeeModels []models.EmployeeModel
	if err := ownedDB(ctx, r.db, ownerID).Scopes(CreatedOrder).Find(&employeeModels).Error; err != nil {
		return nil, err
	}

	employees := make([]employee.Employee, len(employeeModels))
	for i := range employeeModels {
		employees[i] = *employeeModels[i].ToDomain()
	}
	return employees, nil
}

// FindByIDForOwner finds an employee by ID within an owner
func (r *GormEmployeeRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*employee.Employee, error) {
	var model models.EmployeeModel
	if err := ownedDB(ctx, r.db, ownerID).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or fully replaces an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	return r.db.WithContext(ctx).Save(models.EmployeeModelFromDomain(e)).Error
}

// DeleteForOwner deletes an employee within an owner
func (r *GormEmployeeRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := ownedDB(ctx, r.db, ownerID).Delete(&models.EmployeeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
