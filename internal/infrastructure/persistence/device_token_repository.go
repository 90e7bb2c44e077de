package persistence

import (
	"context"

	"github.com/bizdash/backend/internal/domain/notification"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeviceTokenRepository implements DeviceTokenRepository using GORM
type GormDeviceTokenRepository struct {
	db *gorm.DB
}

// NewGormDeviceTokenRepository creates a new GormDeviceTokenRepository
func NewGormDeviceTokenRepository(db *gorm.DB) *GormDeviceTokenRepository {
	return &GormDeviceTokenRepository{db: db}
}

// Upsert inserts the token or, when it is already registered, moves it to
// this owner and refreshes platform and last-seen time
func (r *GormDeviceTokenRepository) Upsert(ctx context.Context, token *notification.DeviceToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner_id", "platform", "last_seen_at", "updated_at"}),
		}).
		Create(models.DeviceTokenModelFromDomain(token)).Error
}

// FindAllForOwner lists the owner's registered tokens
func (r *GormDeviceTokenRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]notification.DeviceToken, error) {
	var tokenModels []models.DeviceTokenModel
	if err := ownedDB(ctx, r.db, ownerID).Scopes(CreatedOrder).Find(&tokenModels).Error; err != nil {
		return nil, err
	}

	tokens := make([]notification.DeviceToken, len(tokenModels))
	for i := range tokenModels {
		tokens[i] = *tokenModels[i].ToDomain()
	}
	return tokens, nil
}

// DeleteForOwner unregisters a token of the owner
func (r *GormDeviceTokenRepository) DeleteForOwner(ctx context.Context, ownerID uuid.UUID, token string) error {
	result := ownedDB(ctx, r.db, ownerID).Delete(&models.DeviceTokenModel{}, "token = ?", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
