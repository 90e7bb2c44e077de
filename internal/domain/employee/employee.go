package employee

import (
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryType selects which pay field of an employee is authoritative
type SalaryType string

const (
	SalaryTypeMonthly SalaryType = "monthly"
	SalaryTypeHourly  SalaryType = "hourly"
)

// IsValid checks if the salary type is a valid SalaryType
func (s SalaryType) IsValid() bool {
	return s == SalaryTypeMonthly || s == SalaryTypeHourly
}

// String returns the string representation of SalaryType
func (s SalaryType) String() string {
	return string(s)
}

// Details holds the editable fields of an employee form
type Details struct {
	Name          string
	Position      string
	Phone         string
	Email         string
	SalaryType    SalaryType
	MonthlySalary decimal.Decimal
	HourlyRate    decimal.Decimal
}

// Employee is a person on the payroll
type Employee struct {
	shared.OwnedAggregateRoot
	Name          string
	Position      string
	Phone         string
	Email         string
	SalaryType    SalaryType
	MonthlySalary decimal.Decimal
	HourlyRate    decimal.Decimal
}

// NewEmployee creates a new employee and raises EmployeeSaved
func NewEmployee(ownerID uuid.UUID, d Details) (*Employee, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	e := &Employee{OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID)}
	if err := e.apply(d); err != nil {
		return nil, err
	}
	e.AddDomainEvent(NewEmployeeSavedEvent(e, true))
	return e, nil
}

// Update replaces all editable fields and raises EmployeeSaved.
// The event is raised on every save, even when nothing changed.
func (e *Employee) Update(d Details) error {
	if err := e.apply(d); err != nil {
		return err
	}
	e.Touch()
	e.AddDomainEvent(NewEmployeeSavedEvent(e, false))
	return nil
}

func (e *Employee) apply(d Details) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Employee name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Employee name cannot exceed 200 characters")
	}
	salaryType := d.SalaryType
	if salaryType == "" {
		salaryType = SalaryTypeMonthly
	}
	if !salaryType.IsValid() {
		return shared.NewDomainError("INVALID_SALARY_TYPE", "Salary type must be monthly or hourly")
	}
	if d.MonthlySalary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Monthly salary cannot be negative")
	}
	if d.HourlyRate.IsNegative() {
		return shared.NewDomainError("INVALID_HOURLY_RATE", "Hourly rate cannot be negative")
	}

	e.Name = name
	e.Position = strings.TrimSpace(d.Position)
	e.Phone = strings.TrimSpace(d.Phone)
	e.Email = strings.TrimSpace(d.Email)
	e.SalaryType = salaryType
	// Only the field matching the salary type is kept
	if salaryType == SalaryTypeMonthly {
		e.MonthlySalary = d.MonthlySalary
		e.HourlyRate = decimal.Zero
	} else {
		e.MonthlySalary = decimal.Zero
		e.HourlyRate = d.HourlyRate
	}
	return nil
}

// IsMonthly reports whether the employee is paid a fixed monthly salary
func (e *Employee) IsMonthly() bool {
	return e.SalaryType == SalaryTypeMonthly
}

// IsHourly reports whether the employee is paid by the hour
func (e *Employee) IsHourly() bool {
	return e.SalaryType == SalaryTypeHourly
}

// EffectivePay returns the authoritative pay field for the salary type
func (e *Employee) EffectivePay() decimal.Decimal {
	if e.IsHourly() {
		return e.HourlyRate
	}
	return e.MonthlySalary
}

// EarningsFor returns hourly rate × elapsed hours
func (e *Employee) EarningsFor(elapsed time.Duration) decimal.Decimal {
	if elapsed <= 0 {
		return decimal.Zero
	}
	return e.HourlyRate.
		Mul(decimal.NewFromInt(elapsed.Milliseconds())).
		Div(decimal.NewFromInt(time.Hour.Milliseconds()))
}

// SearchKeys returns the fields matched by the employees table search
func (e Employee) SearchKeys() []string {
	return []string{e.Name, e.Position, e.Phone, e.Email}
}

// TotalMonthlySalary sums MonthlySalary over employees. Hourly employees contribute zero.
func TotalMonthlySalary(employees []Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.MonthlySalary)
	}
	return total
}
