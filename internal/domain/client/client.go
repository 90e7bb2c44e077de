package client

import (
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Client is a customer of the business
type Client struct {
	shared.OwnedAggregateRoot
	Name      string
	Phone     string
	Email     string
	DateAdded time.Time
	IsActive  bool
}

// NewClient creates a new client owned by ownerID.
// A zero dateAdded defaults to today.
func NewClient(ownerID uuid.UUID, name, phone, email string, dateAdded time.Time, isActive bool) (*Client, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	c := &Client{OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID)}
	if dateAdded.IsZero() {
		dateAdded = time.Now()
	}
	if err := c.apply(name, phone, email, dateAdded, isActive); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces all editable fields. A zero dateAdded keeps the current value.
func (c *Client) Update(name, phone, email string, dateAdded time.Time, isActive bool) error {
	if dateAdded.IsZero() {
		dateAdded = c.DateAdded
	}
	if err := c.apply(name, phone, email, dateAdded, isActive); err != nil {
		return err
	}
	c.Touch()
	return nil
}

func (c *Client) apply(name, phone, email string, dateAdded time.Time, isActive bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	c.Name = name
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
	c.DateAdded = dateAdded
	c.IsActive = isActive
	return nil
}

// SearchKeys returns the fields matched by the clients table search
func (c Client) SearchKeys() []string {
	return []string{c.Name, c.Phone, c.Email}
}
