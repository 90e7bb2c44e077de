package order

import (
	"context"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, ownerID uuid.UUID, orderNumber string) (bool, error) {
	args := m.Called(ctx, ownerID, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

// sequence returns the given suffixes in order, repeating the last one
func sequence(suffixes ...int) func() int {
	i := 0
	return func() int {
		v := suffixes[i]
		if i < len(suffixes)-1 {
			i++
		}
		return v
	}
}

func fixedYear() time.Time { return time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) }

func TestOrderService_CreateGeneratesNumber(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo, order.NewNumberGeneratorWith(fixedYear, sequence(7)), zap.NewNop())

	repo.On("ExistsByNumber", ctx, ownerID, "ORD-2024-007").Return(false, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	resp, err := svc.Create(ctx, ownerID, OrderRequest{Client: "Israel Israeli", TotalAmount: decimal.NewFromInt(2500)})

	require.NoError(t, err)
	assert.Equal(t, "ORD-2024-007", resp.OrderNumber)
	assert.Equal(t, "pending", resp.Status)
	repo.AssertExpectations(t)
}

func TestOrderService_CreateRetriesOnCollision(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo, order.NewNumberGeneratorWith(fixedYear, sequence(1, 2)), zap.NewNop())

	repo.On("ExistsByNumber", ctx, ownerID, "ORD-2024-001").Return(true, nil).Once()
	repo.On("ExistsByNumber", ctx, ownerID, "ORD-2024-002").Return(false, nil).Once()
	repo.On("Save", ctx, mock.Anything).Return(nil)

	resp, err := svc.Create(ctx, ownerID, OrderRequest{Client: "c"})

	require.NoError(t, err)
	assert.Equal(t, "ORD-2024-002", resp.OrderNumber)
}

func TestOrderService_CreateKeepsLastCandidateAfterRetries(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo, order.NewNumberGeneratorWith(fixedYear, sequence(5)), zap.NewNop())

	repo.On("ExistsByNumber", ctx, ownerID, "ORD-2024-005").Return(true, nil).Times(numberAttempts)
	repo.On("Save", ctx, mock.Anything).Return(nil)

	resp, err := svc.Create(ctx, ownerID, OrderRequest{Client: "c"})

	require.NoError(t, err)
	assert.Equal(t, "ORD-2024-005", resp.OrderNumber)
	repo.AssertNumberOfCalls(t, "ExistsByNumber", numberAttempts)
}

func TestOrderService_UpdateKeepsNumber(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	existing, err := order.NewOrder(ownerID, "ORD-2023-004", order.Details{Client: "Ruth"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	svc := NewOrderService(repo, nil, zap.NewNop())
	repo.On("FindByIDForOwner", ctx, ownerID, existing.ID).Return(existing, nil)
	repo.On("Save", ctx, existing).Return(nil)

	resp, err := svc.Update(ctx, ownerID, existing.ID, OrderRequest{
		Client:      "Ruth Aharon",
		OrderDate:   "2023-11-02",
		TotalAmount: decimal.NewFromInt(15200),
		Status:      "completed",
	})

	require.NoError(t, err)
	assert.Equal(t, "ORD-2023-004", resp.OrderNumber)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "2023-11-02", resp.OrderDate)
}

func TestOrderService_ListSearchesNumberAndClient(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	a, _ := order.NewOrder(ownerID, "ORD-2023-001", order.Details{Client: "Dana"})
	b, _ := order.NewOrder(ownerID, "ORD-2023-002", order.Details{Client: "Yossi"})

	repo := new(MockOrderRepository)
	svc := NewOrderService(repo, nil, zap.NewNop())
	repo.On("FindAllForOwner", ctx, ownerID).Return([]order.Order{*a, *b}, nil)

	got, err := svc.List(ctx, ownerID, ListFilter{Search: "-002"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Yossi", got[0].Client)

	got, err = svc.List(ctx, ownerID, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
