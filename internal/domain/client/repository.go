package client

import (
	"context"

	"github.com/google/uuid"
)

// StatusFilter selects the active/inactive tab of the clients list
type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// IsValid checks if the filter is known. Empty means all.
func (f StatusFilter) IsValid() bool {
	switch f {
	case "", StatusFilterAll, StatusFilterActive, StatusFilterInactive:
		return true
	}
	return false
}

// Filter narrows a client listing
type Filter struct {
	Status StatusFilter
}

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindAllForOwner returns every client of the owner matching filter
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter Filter) ([]Client, error)
	// FindByIDForOwner finds a client by ID within an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Client, error)
	// Save creates or fully replaces a client
	Save(ctx context.Context, client *Client) error
	// DeleteForOwner deletes a client within an owner
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
