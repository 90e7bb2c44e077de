package employee

import (
	"context"

	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService handles employee records. Every successful save publishes
// EmployeeSaved, which the ledger turns into a salary posting.
type EmployeeService struct {
	employeeRepo employee.EmployeeRepository
	publisher    shared.EventPublisher
	logger       *zap.Logger
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo employee.EmployeeRepository, publisher shared.EventPublisher, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// List returns the owner's employees matching the search box
func (s *EmployeeService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]EmployeeResponse, error) {
	employees, err := s.employeeRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponses(shared.FilterBySearch(employees, filter.Search)), nil
}

// GetByID returns one employee of the owner
func (s *EmployeeService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*EmployeeResponse, error) {
	e, err := s.employeeRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToEmployeeResponse(e)
	return &resp, nil
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, ownerID uuid.UUID, req EmployeeRequest) (*EmployeeResponse, error) {
	e, err := employee.NewEmployee(ownerID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, e)

	resp := ToEmployeeResponse(e)
	return &resp, nil
}

// Update replaces every editable field of an owner's employee
func (s *EmployeeService) Update(ctx context.Context, ownerID, id uuid.UUID, req EmployeeRequest) (*EmployeeResponse, error) {
	e, err := s.employeeRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := e.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, e)

	resp := ToEmployeeResponse(e)
	return &resp, nil
}

// Delete deletes an owner's employee
func (s *EmployeeService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.employeeRepo.DeleteForOwner(ctx, ownerID, id)
}

// Payroll returns the headcount and Σ monthly_salary. Hourly employees add zero.
func (s *EmployeeService) Payroll(ctx context.Context, ownerID uuid.UUID) (*PayrollResponse, error) {
	employees, err := s.employeeRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &PayrollResponse{
		Count:              len(employees),
		TotalMonthlySalary: employee.TotalMonthlySalary(employees),
	}, nil
}

// publishEvents runs after the write is committed; a failed publish never fails the save
func (s *EmployeeService) publishEvents(ctx context.Context, e *employee.Employee) {
	events := e.GetDomainEvents()
	e.ClearDomainEvents()
	if len(events) == 0 || s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish employee events",
			zap.String("employee_id", e.ID.String()),
			zap.Error(err),
		)
	}
}
