package finance

import (
	"context"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FinanceService handles the owner's income and expense ledger
type FinanceService struct {
	txRepo finance.TransactionRepository
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(txRepo finance.TransactionRepository) *FinanceService {
	return &FinanceService{txRepo: txRepo}
}

// List returns the owner's transactions for the requested tab, then applies the search box
func (s *FinanceService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]TransactionResponse, error) {
	f, err := toFilter(filter.Type)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.FindAllForOwner(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	return ToTransactionResponses(shared.FilterBySearch(txs, filter.Search)), nil
}

// GetByID returns one transaction of the owner
func (s *FinanceService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*TransactionResponse, error) {
	tx, err := s.txRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// Create records a manual income or expense
func (s *FinanceService) Create(ctx context.Context, ownerID uuid.UUID, req TransactionRequest) (*TransactionResponse, error) {
	date, err := common.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	tx, err := finance.NewTransaction(ownerID, date, finance.TransactionType(req.Type), req.Category, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}
	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// Update replaces every field of an owner's transaction
func (s *FinanceService) Update(ctx context.Context, ownerID, id uuid.UUID, req TransactionRequest) (*TransactionResponse, error) {
	date, err := common.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	tx, err := s.txRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Update(date, finance.TransactionType(req.Type), req.Category, req.Amount, req.Description); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}
	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// Delete deletes an owner's transaction
func (s *FinanceService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.txRepo.DeleteForOwner(ctx, ownerID, id)
}

// Summary returns income, expense and net over the whole ledger
func (s *FinanceService) Summary(ctx context.Context, ownerID uuid.UUID) (*SummaryResponse, error) {
	txs, err := s.txRepo.FindAllForOwner(ctx, ownerID, finance.Filter{})
	if err != nil {
		return nil, err
	}
	totals := finance.ComputeTotals(txs)
	return &SummaryResponse{Income: totals.Income, Expense: totals.Expense, Net: totals.Net}, nil
}

func toFilter(value string) (finance.Filter, error) {
	switch value {
	case "", "all":
		return finance.Filter{}, nil
	}
	t := finance.TransactionType(value)
	if !t.IsValid() {
		return finance.Filter{}, shared.NewDomainError("INVALID_FILTER", "Type must be all, income or expense")
	}
	return finance.Filter{Type: t}, nil
}
