package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", uuid.New(), uuid.New()),
	}
}

type testHandler struct {
	name       string
	eventTypes []string
	err        error
	panicWith  any
	order      *[]string

	mu      sync.Mutex
	handled []shared.DomainEvent
}

func (h *testHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	h.handled = append(h.handled, event)
	if h.order != nil {
		*h.order = append(*h.order, h.name)
	}
	h.mu.Unlock()
	if h.panicWith != nil {
		panic(h.panicWith)
	}
	return h.err
}

func (h *testHandler) EventTypes() []string { return h.eventTypes }

func (h *testHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &testHandler{}
	bus.Subscribe(handler, "TestEvent")

	event := newTestEvent("TestEvent")
	require.NoError(t, bus.Publish(context.Background(), event))

	require.Equal(t, 1, handler.count())
	assert.Equal(t, event, handler.handled[0])
}

func TestInMemoryEventBus_UsesHandlerEventTypes(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &testHandler{eventTypes: []string{"A", "B"}}
	bus.Subscribe(handler)

	_ = bus.Publish(context.Background(), newTestEvent("A"), newTestEvent("B"), newTestEvent("C"))

	assert.Equal(t, 2, handler.count())
}

func TestInMemoryEventBus_Wildcard(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &testHandler{}
	bus.Subscribe(handler)

	_ = bus.Publish(context.Background(), newTestEvent("A"), newTestEvent("B"))

	assert.Equal(t, 2, handler.count())
}

func TestInMemoryEventBus_SubscriptionOrder(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	var order []string
	bus.Subscribe(&testHandler{name: "first", order: &order}, "E")
	bus.Subscribe(&testHandler{name: "second", order: &order}, "E")

	_ = bus.Publish(context.Background(), newTestEvent("E"))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInMemoryEventBus_HandlerErrorIsIsolated(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	bus := NewInMemoryEventBus(zap.New(core))

	failing := &testHandler{err: errors.New("handler error")}
	panicking := &testHandler{panicWith: "boom"}
	healthy := &testHandler{}
	bus.Subscribe(failing, "E")
	bus.Subscribe(panicking, "E")
	bus.Subscribe(healthy, "E")

	err := bus.Publish(context.Background(), newTestEvent("E"))

	require.NoError(t, err)
	assert.Equal(t, 1, healthy.count())
	assert.Equal(t, 2, recorded.FilterMessage("handler failed to process event").Len())
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &testHandler{}
	bus.Subscribe(handler, "A", "B")
	require.Equal(t, 1, bus.HandlerCount("A"))

	bus.Unsubscribe(handler)
	_ = bus.Publish(context.Background(), newTestEvent("A"))

	assert.Zero(t, handler.count())
	assert.Zero(t, bus.HandlerCount("A"))
	assert.Zero(t, bus.HandlerCount("B"))
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	require.NoError(t, bus.Start(context.Background()))
	assert.True(t, bus.running.Load())
	require.NoError(t, bus.Stop(context.Background()))
	assert.False(t, bus.running.Load())
}
