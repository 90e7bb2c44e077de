package identity

import (
	"net/mail"
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Profile holds the registration details of a business owner
type Profile struct {
	FullName      string
	BusinessName  string
	BusinessPhone string
}

// User is a signed-up business owner. Its ID is the owner ID of every record it creates.
// A user cannot sign in until an operator approves it.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	Profile
	Approved   bool
	ApprovedAt *time.Time
}

// NewUser creates an unapproved user with a hashed password
func NewUser(email, password string, profile Profile) (*User, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateProfile(&profile); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: shared.NewBaseEntity()},
		Email:             email,
		PasswordHash:      hash,
		Profile:           profile,
	}
	user.AddDomainEvent(NewUserSignedUpEvent(user))
	return user, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanSignIn reports whether the approval gate is open
func (u *User) CanSignIn() bool {
	return u.Approved
}

// Approve opens the sign-in gate
func (u *User) Approve() {
	if u.Approved {
		return
	}
	now := time.Now()
	u.Approved = true
	u.ApprovedAt = &now
	u.UpdatedAt = now
}

// Revoke closes the sign-in gate
func (u *User) Revoke() {
	u.Approved = false
	u.ApprovedAt = nil
	u.Touch()
}

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func validateProfile(p *Profile) error {
	p.FullName = strings.TrimSpace(p.FullName)
	p.BusinessName = strings.TrimSpace(p.BusinessName)
	p.BusinessPhone = strings.TrimSpace(p.BusinessPhone)
	if len([]rune(p.FullName)) < 2 {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name must be at least 2 characters")
	}
	if len([]rune(p.BusinessName)) < 2 {
		return shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name must be at least 2 characters")
	}
	return nil
}
