package identity

import (
	"time"

	"github.com/bizdash/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// SignUpRequest creates an account that waits for approval
type SignUpRequest struct {
	Email         string `json:"email" binding:"required,email,max=200"`
	Password      string `json:"password" binding:"required,min=6,max=72"`
	FullName      string `json:"full_name" binding:"required,min=2,max=200"`
	BusinessName  string `json:"business_name" binding:"required,min=2,max=200"`
	BusinessPhone string `json:"business_phone" binding:"max=50"`
}

// SignInRequest exchanges credentials for a token pair
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse is the signed-in identity and profile
type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	BusinessName  string     `json:"business_name"`
	BusinessPhone string     `json:"business_phone"`
	Approved      bool       `json:"approved"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TokenResponse is an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// SignInResponse is returned by sign-in and refresh
type SignInResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// ToUserResponse converts a domain User to its response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		BusinessName:  u.BusinessName,
		BusinessPhone: u.BusinessPhone,
		Approved:      u.Approved,
		ApprovedAt:    u.ApprovedAt,
		CreatedAt:     u.CreatedAt,
	}
}
