package client

import (
	"context"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/client"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo client.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo client.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// List returns the owner's clients for the requested tab, then applies the search box
func (s *ClientService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]ClientResponse, error) {
	status := client.StatusFilter(filter.Status)
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_FILTER", "Status must be all, active or inactive")
	}
	clients, err := s.clientRepo.FindAllForOwner(ctx, ownerID, client.Filter{Status: status})
	if err != nil {
		return nil, err
	}
	return ToClientResponses(shared.FilterBySearch(clients, filter.Search)), nil
}

// GetByID returns one client of the owner
func (s *ClientService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, ownerID uuid.UUID, req ClientRequest) (*ClientResponse, error) {
	dateAdded, err := common.ParseDate(req.DateAdded)
	if err != nil {
		return nil, err
	}
	c, err := client.NewClient(ownerID, req.Name, req.Phone, req.Email, dateAdded, req.active())
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Update replaces every editable field of an owner's client
func (s *ClientService) Update(ctx context.Context, ownerID, id uuid.UUID, req ClientRequest) (*ClientResponse, error) {
	dateAdded, err := common.ParseDate(req.DateAdded)
	if err != nil {
		return nil, err
	}
	c, err := s.clientRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := c.Update(req.Name, req.Phone, req.Email, dateAdded, req.active()); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Delete deletes an owner's client
func (s *ClientService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.clientRepo.DeleteForOwner(ctx, ownerID, id)
}
