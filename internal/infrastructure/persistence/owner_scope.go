package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOwnerIDRequired is returned when a scoped query is built without an owner
var ErrOwnerIDRequired = errors.New("owner_id is required for scoped queries")

// OwnerScope applies owner filtering to GORM queries
func OwnerScope(ownerID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// CreatedOrder lists rows oldest first, the only server-side ordering
func CreatedOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// ownedDB returns a DB scoped to ownerID. A nil owner yields a DB that
// errors on execution instead of reading every owner's rows.
func ownedDB(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	scoped := db.WithContext(ctx)
	if ownerID == uuid.Nil {
		_ = scoped.AddError(ErrOwnerIDRequired)
		return scoped
	}
	return OwnerScope(ownerID)(scoped)
}
