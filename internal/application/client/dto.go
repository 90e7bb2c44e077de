package client

import (
	"time"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/client"
	"github.com/google/uuid"
)

// ClientRequest is the body of create and update. Update is a full replace.
type ClientRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Phone     string `json:"phone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=254"`
	DateAdded string `json:"date_added" binding:"omitempty,bizdate"`
	IsActive  *bool  `json:"is_active"`
}

// active defaults to true when the field is omitted
func (r ClientRequest) active() bool {
	return r.IsActive == nil || *r.IsActive
}

// ListFilter narrows the clients table
type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=all active inactive"`
	Search string `form:"search"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	DateAdded string    `json:"date_added"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain Client to its response DTO
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		DateAdded: common.FormatDate(c.DateAdded),
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientResponses converts a slice of domain Clients
func ToClientResponses(clients []client.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}
