package models

import (
	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// EmployeeModel is the persistence model for the Employee aggregate root.
type EmployeeModel struct {
	OwnedModel
	Name          string              `gorm:"type:varchar(200);not null"`
	Position      string              `gorm:"type:varchar(200);not null;default:''"`
	Phone         string              `gorm:"type:varchar(50);not null;default:''"`
	Email         string              `gorm:"type:varchar(254);not null;default:''"`
	SalaryType    employee.SalaryType `gorm:"type:varchar(10);not null"`
	MonthlySalary decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	HourlyRate    decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *employee.Employee {
	return &employee.Employee{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		Name:               m.Name,
		Position:           m.Position,
		Phone:              m.Phone,
		Email:              m.Email,
		SalaryType:         m.SalaryType,
		MonthlySalary:      m.MonthlySalary,
		HourlyRate:         m.HourlyRate,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *employee.Employee) {
	m.FromDomainOwnedAggregateRoot(e.OwnedAggregateRoot)
	m.Name = e.Name
	m.Position = e.Position
	m.Phone = e.Phone
	m.Email = e.Email
	m.SalaryType = e.SalaryType
	m.MonthlySalary = e.MonthlySalary
	m.HourlyRate = e.HourlyRate
}

// EmployeeModelFromDomain creates a new persistence model from a domain Employee entity.
func EmployeeModelFromDomain(e *employee.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}
