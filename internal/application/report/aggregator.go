package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/bizdash/backend/internal/domain/client"
	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/bizdash/backend/internal/domain/order"
	"github.com/bizdash/backend/internal/domain/report"
	"github.com/bizdash/backend/internal/domain/task"
	"github.com/bizdash/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Collection names used in logs, metrics and SummaryResponse.Degraded
const (
	CollectionClients   = "clients"
	CollectionFinances  = "finances"
	CollectionInventory = "inventory"
	CollectionTasks     = "tasks"
	CollectionOrders    = "orders"
	CollectionEmployees = "employees"
)

// FailureRecorder counts collections that failed to load
type FailureRecorder interface {
	RecordDashboardFailure(collection string)
}

type noopFailures struct{}

func (noopFailures) RecordDashboardFailure(string) {}

// Repositories groups the collections the dashboard reads
type Repositories struct {
	Clients      client.ClientRepository
	Transactions finance.TransactionRepository
	Items        inventory.ItemRepository
	Tasks        task.TaskRepository
	Orders       order.OrderRepository
	Employees    employee.EmployeeRepository
}

// Aggregator builds the dashboard from six concurrent reads. It never
// caches; every call recomputes from the stores.
type Aggregator struct {
	repos    Repositories
	money    *MoneyFormatter
	currency string
	failures FailureRecorder
	logger   *zap.Logger
}

// NewAggregator creates a new Aggregator. failures may be nil.
func NewAggregator(repos Repositories, currencyCode, locale string, failures FailureRecorder, log *zap.Logger) (*Aggregator, error) {
	money, err := NewMoneyFormatter(currencyCode, locale)
	if err != nil {
		return nil, err
	}
	if failures == nil {
		failures = noopFailures{}
	}
	return &Aggregator{
		repos:    repos,
		money:    money,
		currency: currencyCode,
		failures: failures,
		logger:   log.Named("dashboard"),
	}, nil
}

// Summary fetches every collection of the owner and summarizes them. A
// failed fetch degrades that collection to empty instead of failing the call.
func (a *Aggregator) Summary(ctx context.Context, ownerID uuid.UUID) (*SummaryResponse, error) {
	var (
		snapshot report.Snapshot
		mu       sync.Mutex
		degraded []string
		g        errgroup.Group
	)
	degrade := func(collection string, err error) {
		logger.Enrich(ctx, a.logger).Warn("dashboard collection failed to load",
			zap.String("collection", collection),
			zap.String("owner_id", ownerID.String()),
			zap.Error(err),
		)
		a.failures.RecordDashboardFailure(collection)
		mu.Lock()
		degraded = append(degraded, collection)
		mu.Unlock()
	}

	g.Go(fetch(CollectionClients, &snapshot.Clients, degrade, func() ([]client.Client, error) {
		return a.repos.Clients.FindAllForOwner(ctx, ownerID, client.Filter{})
	}))
	g.Go(fetch(CollectionFinances, &snapshot.Transactions, degrade, func() ([]finance.Transaction, error) {
		return a.repos.Transactions.FindAllForOwner(ctx, ownerID, finance.Filter{})
	}))
	g.Go(fetch(CollectionInventory, &snapshot.Items, degrade, func() ([]inventory.Item, error) {
		return a.repos.Items.FindAllForOwner(ctx, ownerID, inventory.Filter{})
	}))
	g.Go(fetch(CollectionTasks, &snapshot.Tasks, degrade, func() ([]task.Task, error) {
		return a.repos.Tasks.FindAllForOwner(ctx, ownerID, task.Filter{})
	}))
	g.Go(fetch(CollectionOrders, &snapshot.Orders, degrade, func() ([]order.Order, error) {
		return a.repos.Orders.FindAllForOwner(ctx, ownerID)
	}))
	g.Go(fetch(CollectionEmployees, &snapshot.Employees, degrade, func() ([]employee.Employee, error) {
		return a.repos.Employees.FindAllForOwner(ctx, ownerID)
	}))
	// fetches never return an error
	_ = g.Wait()

	resp := toSummaryResponse(report.Summarize(snapshot), a.money)
	resp.Currency = a.currency
	if degraded != nil {
		resp.Degraded = degraded
	}
	return &resp, nil
}

// fetch loads one collection into dst. Errors and panics degrade it to empty.
func fetch[T any](collection string, dst *[]T, degrade func(string, error), load func() ([]T, error)) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				*dst = []T{}
				degrade(collection, fmt.Errorf("panic: %v", r))
			}
		}()
		rows, err := load()
		if err != nil {
			*dst = []T{}
			degrade(collection, err)
			return nil
		}
		*dst = rows
		return nil
	}
}
