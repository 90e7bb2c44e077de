package inventory

import (
	"context"

	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService handles stock items. Creating an item publishes
// InventoryItemCreated so the ledger records the purchase.
type InventoryService struct {
	itemRepo  inventory.ItemRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(itemRepo inventory.ItemRepository, publisher shared.EventPublisher, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		itemRepo:  itemRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns the owner's items, optionally for one category, then applies the search box
func (s *InventoryService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAllForOwner(ctx, ownerID, inventory.Filter{Category: filter.Category})
	if err != nil {
		return nil, err
	}
	return ToItemResponses(shared.FilterBySearch(items, filter.Search)), nil
}

// GetByID returns one item of the owner
func (s *InventoryService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// Create creates a new item
func (s *InventoryService) Create(ctx context.Context, ownerID uuid.UUID, req ItemRequest) (*ItemResponse, error) {
	item, err := inventory.NewItem(ownerID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	events := item.GetDomainEvents()
	item.ClearDomainEvents()
	if s.publisher != nil && len(events) > 0 {
		if err := s.publisher.Publish(ctx, events...); err != nil {
			s.logger.Error("failed to publish inventory events",
				zap.String("item_id", item.ID.String()),
				zap.Error(err),
			)
		}
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// Update replaces every editable field. Stock edits never post to the ledger.
func (s *InventoryService) Update(ctx context.Context, ownerID, id uuid.UUID, req ItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := item.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// Delete deletes an owner's item
func (s *InventoryService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.itemRepo.DeleteForOwner(ctx, ownerID, id)
}

// Categories returns the owner's distinct non-empty categories for the tab bar
func (s *InventoryService) Categories(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	return s.itemRepo.ListCategories(ctx, ownerID)
}
