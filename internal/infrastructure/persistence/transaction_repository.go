package persistence

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindAllForOwner returns the owner's ledger, optionally only one type
func (r *GormTransactionRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter finance.Filter) ([]finance.Transaction, error) {
	query := ownedDB(ctx, r.db, ownerID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var txModels []models.FinancialTransactionModel
	if err := query.Scopes(CreatedOrder).Find(&txModels).Error; err != nil {
		return nil, err
	}

	txs := make([]finance.Transaction, len(txModels))
	for i := range txModels {
		txs[i] = *txModels[i].ToDomain()
	}
	return txs, nil
}

// FindByIDForOwner finds an entry by ID within an owner
func (r *GormTransactionRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.Transaction, error) {
	var model models.FinancialTransactionModel
	if err := ownedDB(ctx, r.db, ownerID).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or fully replaces an entry
func (r *GormTransactionRepository) Save(ctx context.Context, tx *finance.Transaction) error {
	return r.db.WithContext(ctx).Save(models.FinancialTransactionModelFromDomain(tx)).Error
}

// DeleteForOwner deletes an entry within an owner
func (r *GormTransactionRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := ownedDB(ctx, r.db, ownerID).Delete(&models.FinancialTransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
