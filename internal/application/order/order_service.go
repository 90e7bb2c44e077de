package order

import (
	"context"

	"github.com/bizdash/backend/internal/application/common"
	"github.com/bizdash/backend/internal/domain/order"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// numberAttempts bounds the collision retries of order number generation
const numberAttempts = 3

// OrderService handles customer orders
type OrderService struct {
	orderRepo order.OrderRepository
	numbers   *order.NumberGenerator
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.OrderRepository, numbers *order.NumberGenerator, logger *zap.Logger) *OrderService {
	if numbers == nil {
		numbers = order.NewNumberGenerator()
	}
	return &OrderService{
		orderRepo: orderRepo,
		numbers:   numbers,
		logger:    logger,
	}
}

// List returns the owner's orders matching the search box
func (s *OrderService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(shared.FilterBySearch(orders, filter.Search)), nil
}

// GetByID returns one order of the owner
func (s *OrderService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// Create creates an order with a generated ORD-<year>-<nnn> number
func (s *OrderService) Create(ctx context.Context, ownerID uuid.UUID, req OrderRequest) (*OrderResponse, error) {
	details, err := toDetails(req)
	if err != nil {
		return nil, err
	}
	number, err := s.nextNumber(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	o, err := order.NewOrder(ownerID, number, details)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// Update replaces every editable field. The order number never changes.
func (s *OrderService) Update(ctx context.Context, ownerID, id uuid.UUID, req OrderRequest) (*OrderResponse, error) {
	details, err := toDetails(req)
	if err != nil {
		return nil, err
	}
	o, err := s.orderRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := o.Update(details); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// Delete deletes an owner's order
func (s *OrderService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.orderRepo.DeleteForOwner(ctx, ownerID, id)
}

// nextNumber tries a few candidates against the owner's orders. With only
// 1000 numbers per year a collision is possible; after the last attempt the
// candidate is used anyway since numbers are not required to be unique.
func (s *OrderService) nextNumber(ctx context.Context, ownerID uuid.UUID) (string, error) {
	var candidate string
	for attempt := 1; attempt <= numberAttempts; attempt++ {
		candidate = s.numbers.Next()
		exists, err := s.orderRepo.ExistsByNumber(ctx, ownerID, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	s.logger.Warn("order number collision after retries",
		zap.String("owner_id", ownerID.String()),
		zap.String("order_number", candidate),
	)
	return candidate, nil
}

func toDetails(req OrderRequest) (order.Details, error) {
	date, err := common.ParseDate(req.OrderDate)
	if err != nil {
		return order.Details{}, err
	}
	return order.Details{
		Client:      req.Client,
		OrderDate:   date,
		TotalAmount: req.TotalAmount,
		Status:      order.Status(req.Status),
	}, nil
}
