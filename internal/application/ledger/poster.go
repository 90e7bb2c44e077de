package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/infrastructure/logger"
	"github.com/bizdash/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Poster writes the automatic expense entries raised by payroll and stock
// purchases. Every posting is a single expense transaction dated today.
type Poster struct {
	txRepo   finance.TransactionRepository
	recorder PostingRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewPoster creates a new Poster
func NewPoster(txRepo finance.TransactionRepository, log *zap.Logger, opts ...Option) *Poster {
	o := buildOptions(opts)
	return &Poster{
		txRepo:   txRepo,
		recorder: o.recorder,
		logger:   log.Named("ledger"),
		now:      o.now,
	}
}

// PostEntry records one expense for the owner
func (p *Poster) PostEntry(
	ctx context.Context,
	ownerID uuid.UUID,
	category string,
	amount decimal.Decimal,
	description string,
) (*finance.Transaction, error) {
	log := logger.Enrich(ctx, p.logger)

	tx, err := finance.NewTransaction(ownerID, p.now(), finance.TransactionTypeExpense, category, amount, description)
	if err != nil {
		p.recorder.RecordPosting(category, telemetry.OutcomeFailed, 0)
		return nil, err
	}
	if err := p.txRepo.Save(ctx, tx); err != nil {
		p.recorder.RecordPosting(category, telemetry.OutcomeFailed, 0)
		log.Error("failed to post expense",
			zap.String("owner_id", ownerID.String()),
			zap.String("category", category),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to post %s expense: %w", category, err)
	}

	p.recorder.RecordPosting(category, telemetry.OutcomePosted, amount.InexactFloat64())
	log.Info("expense posted",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("category", category),
		zap.String("amount", amount.String()),
		zap.String("description", description),
	)
	return tx, nil
}

func (p *Poster) skip(category string) {
	p.recorder.RecordPosting(category, telemetry.OutcomeSkipped, 0)
}
