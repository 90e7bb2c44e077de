package employee

import (
	"context"

	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	// FindAllForOwner returns every employee of the owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]Employee, error)
	// FindByIDForOwner finds an employee by ID within an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Employee, error)
	// Save creates or fully replaces an employee
	Save(ctx context.Context, employee *Employee) error
	// DeleteForOwner deletes an employee within an owner
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
