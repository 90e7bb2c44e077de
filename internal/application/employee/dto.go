package employee

import (
	"time"

	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeRequest is the body of create and update. Only the pay field
// matching salary_type is kept; the other is stored as zero.
type EmployeeRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Position      string          `json:"position" binding:"max=200"`
	Phone         string          `json:"phone" binding:"max=50"`
	Email         string          `json:"email" binding:"omitempty,email,max=254"`
	SalaryType    string          `json:"salary_type" binding:"omitempty,salary_type"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
}

func (r EmployeeRequest) details() employee.Details {
	return employee.Details{
		Name:          r.Name,
		Position:      r.Position,
		Phone:         r.Phone,
		Email:         r.Email,
		SalaryType:    employee.SalaryType(r.SalaryType),
		MonthlySalary: r.MonthlySalary,
		HourlyRate:    r.HourlyRate,
	}
}

// ListFilter narrows the employees table
type ListFilter struct {
	Search string `form:"search"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	Name          string          `json:"name"`
	Position      string          `json:"position"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	SalaryType    string          `json:"salary_type"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PayrollResponse is the employees page header
type PayrollResponse struct {
	Count              int             `json:"count"`
	TotalMonthlySalary decimal.Decimal `json:"total_monthly_salary"`
}

// ToEmployeeResponse converts a domain Employee to its response DTO
func ToEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		Name:          e.Name,
		Position:      e.Position,
		Phone:         e.Phone,
		Email:         e.Email,
		SalaryType:    e.SalaryType.String(),
		MonthlySalary: e.MonthlySalary,
		HourlyRate:    e.HourlyRate,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain Employees
func ToEmployeeResponses(employees []employee.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return out
}
