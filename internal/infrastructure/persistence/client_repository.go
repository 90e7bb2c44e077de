package persistence

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/client"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindAllForOwner returns the owner's clients, narrowed by the status tab
func (r *GormClientRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter client.Filter) ([]client.Client, error) {
	query := ownedDB(ctx, r.db, ownerID)
	switch filter.Status {
	case client.StatusFilterActive:
		query = query.Where("is_active = ?", true)
	case client.StatusFilterInactive:
		query = query.Where("is_active = ?", false)
	}

	var clientModels []models.ClientModel
	if err := query.Scopes(CreatedOrder).Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]client.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = *clientModels[i].ToDomain()
	}
	return clients, nil
}

// FindByIDForOwner finds a client by ID within an owner
func (r *GormClientRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*client.Client, error) {
	var model models.ClientModel
	if err := ownedDB(ctx, r.db, ownerID).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or fully replaces a client
func (r *GormClientRepository) Save(ctx context.Context, c *client.Client) error {
	return r.db.WithContext(ctx).Save(models.ClientModelFromDomain(c)).Error
}

// DeleteForOwner deletes a client within an owner
func (r *GormClientRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := ownedDB(ctx, r.db, ownerID).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
