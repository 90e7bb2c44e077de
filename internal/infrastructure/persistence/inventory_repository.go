package persistence

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInventoryRepository implements ItemRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindAllForOwner returns the owner's stock, optionally one category
func (r *GormInventoryRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter inventory.Filter) ([]inventory.Item, error) {
	query := ownedDB(ctx, r.db, ownerID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var itemModels []models.InventoryItemModel
	if err := query.Scopes(CreatedOrder).Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]inventory.Item, len(itemModels))
	for i := range itemModels {
		items[i] = *itemModels[i].ToDomain()
	}
	return items, nil
}

// FindByIDForOwner finds an item by ID within an owner
func (r *GormInventoryRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*inventory.Item, error) {
	var model models.InventoryItemModel
	if err := ownedDB(ctx, r.db, ownerID).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or fully replaces an item
func (r *GormInventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).Save(models.InventoryItemModelFromDomain(item)).Error
}

// DeleteForOwner deletes an item within an owner
func (r *GormInventoryRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := ownedDB(ctx, r.db, ownerID).Delete(&models.InventoryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ListCategories returns the distinct non-empty categories of the owner, sorted
func (r *GormInventoryRepository) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	categories := make([]string, 0)
	err := ownedDB(ctx, r.db, ownerID).
		Model(&models.InventoryItemModel{}).
		Where("category <> ?", "").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
