package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/identity"
	"github.com/bizdash/backend/internal/domain/shared"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Email         string `gorm:"type:varchar(254);not null;uniqueIndex:idx_users_email"`
	PasswordHash  string `gorm:"type:varchar(100);not null"`
	FullName      string `gorm:"type:varchar(200);not null"`
	BusinessName  string `gorm:"type:varchar(200);not null"`
	BusinessPhone string `gorm:"type:varchar(50);not null;default:''"`
	Approved      bool   `gorm:"not null;default:false"`
	ApprovedAt    *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: m.BaseModel.ToDomain()},
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Profile: identity.Profile{
			FullName:      m.FullName,
			BusinessName:  m.BusinessName,
			BusinessPhone: m.BusinessPhone,
		},
		Approved:   m.Approved,
		ApprovedAt: m.ApprovedAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FullName = u.FullName
	m.BusinessName = u.BusinessName
	m.BusinessPhone = u.BusinessPhone
	m.Approved = u.Approved
	m.ApprovedAt = u.ApprovedAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
