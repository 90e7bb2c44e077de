package ledger

import (
	"context"
	"fmt"

	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/bizdash/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SalaryPostingHandler posts a monthly salary expense on every employee save.
// Hourly employees are paid through shifts instead.
type SalaryPostingHandler struct {
	poster *Poster
	logger *zap.Logger
}

// NewSalaryPostingHandler creates a new handler for EmployeeSaved events
func NewSalaryPostingHandler(poster *Poster, logger *zap.Logger) *SalaryPostingHandler {
	return &SalaryPostingHandler{poster: poster, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *SalaryPostingHandler) EventTypes() []string {
	return []string{employee.EventTypeEmployeeSaved}
}

// Handle processes an EmployeeSavedEvent
func (h *SalaryPostingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	saved, ok := event.(*employee.EmployeeSavedEvent)
	if !ok {
		return unexpectedEvent(employee.EventTypeEmployeeSaved, event)
	}
	if saved.SalaryType != employee.SalaryTypeMonthly {
		h.poster.skip(finance.CategorySalary)
		h.logger.Debug("skipping salary posting for non-monthly employee",
			zap.String("employee_id", saved.EmployeeID.String()),
			zap.String("salary_type", saved.SalaryType.String()),
		)
		return nil
	}

	_, err := h.poster.PostEntry(ctx, saved.OwnerID(), finance.CategorySalary, saved.MonthlySalary,
		fmt.Sprintf("Monthly salary for %s", saved.Name))
	return err
}

// ShiftPostingHandler posts the earnings of a finished hourly shift
type ShiftPostingHandler struct {
	poster *Poster
}

// NewShiftPostingHandler creates a new handler for ShiftEnded events
func NewShiftPostingHandler(poster *Poster) *ShiftPostingHandler {
	return &ShiftPostingHandler{poster: poster}
}

// EventTypes returns the event types this handler is interested in
func (h *ShiftPostingHandler) EventTypes() []string {
	return []string{employee.EventTypeShiftEnded}
}

// Handle processes a ShiftEndedEvent
func (h *ShiftPostingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	ended, ok := event.(*employee.ShiftEndedEvent)
	if !ok {
		return unexpectedEvent(employee.EventTypeShiftEnded, event)
	}
	_, err := h.poster.PostEntry(ctx, ended.OwnerID(), finance.CategorySalary, ended.Earned,
		fmt.Sprintf("Hourly salary for %s", ended.Name))
	return err
}

// InventoryPurchaseHandler posts quantity × unit price when an item is created
type InventoryPurchaseHandler struct {
	poster *Poster
}

// NewInventoryPurchaseHandler creates a new handler for InventoryItemCreated events
func NewInventoryPurchaseHandler(poster *Poster) *InventoryPurchaseHandler {
	return &InventoryPurchaseHandler{poster: poster}
}

// EventTypes returns the event types this handler is interested in
func (h *InventoryPurchaseHandler) EventTypes() []string {
	return []string{inventory.EventTypeItemCreated}
}

// Handle processes an ItemCreatedEvent
func (h *InventoryPurchaseHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*inventory.ItemCreatedEvent)
	if !ok {
		return unexpectedEvent(inventory.EventTypeItemCreated, event)
	}
	_, err := h.poster.PostEntry(ctx, created.OwnerID(), finance.CategoryInventory, created.PurchaseAmount(),
		fmt.Sprintf("Inventory purchase: %s", created.Name))
	return err
}

// Register subscribes every posting handler to the bus
func Register(bus shared.EventSubscriber, poster *Poster, logger *zap.Logger) {
	bus.Subscribe(NewSalaryPostingHandler(poster, logger))
	bus.Subscribe(NewShiftPostingHandler(poster))
	bus.Subscribe(NewInventoryPurchaseHandler(poster))
}

func unexpectedEvent(expected string, event shared.DomainEvent) error {
	return fmt.Errorf("unexpected event type: expected %s, got %s", expected, event.EventType())
}
