package persistence

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/order"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindAllForOwner returns every order of the owner
func (r *GormOrderRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]order.Order, error) {
	var orderModels []models.OrderModel
	if err := ownedDB(ctx, r.db, ownerID).Scopes(CreatedOrder).Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]order.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = *orderModels[i].ToDomain()
	}
	return orders, nil
}

// FindByIDForOwner finds an order by ID within an owner
func (r *GormOrderRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := ownedDB(ctx, r.db, ownerID).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByNumber reports whether the owner already has an order with this number
func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, ownerID uuid.UUID, orderNumber string) (bool, error) {
	var count int64
	err := ownedDB(ctx, r.db, ownerID).
		Model(&models.OrderModel{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or fully replaces an order
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Save(models.OrderModelFromDomain(o)).Error
}

// DeleteForOwner deletes an order within an owner
func (r *GormOrderRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := ownedDB(ctx, r.db, ownerID).Delete(&models.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
