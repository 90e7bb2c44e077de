package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bizdash/backend/internal/application/client"
	"github.com/bizdash/backend/internal/application/employee"
	"github.com/bizdash/backend/internal/application/finance"
	"github.com/bizdash/backend/internal/application/inventory"
	"github.com/bizdash/backend/internal/application/ledger"
	"github.com/bizdash/backend/internal/application/notification"
	"github.com/bizdash/backend/internal/application/order"
	"github.com/bizdash/backend/internal/application/report"
	"github.com/bizdash/backend/internal/application/task"
	"github.com/bizdash/backend/internal/infrastructure/cache"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/infrastructure/event"
	"github.com/bizdash/backend/internal/infrastructure/persistence"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testStack serves every collection handler over a throwaway sqlite file.
// Requests carry the owner in the X-Test-Owner header instead of a token.
type testStack struct {
	router *gin.Engine
}

const testOwnerHeader = "X-Test-Owner"

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:     persistence.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "handler.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate())

	log := zap.NewNop()
	clients := persistence.NewGormClientRepository(db.DB)
	employees := persistence.NewGormEmployeeRepository(db.DB)
	txs := persistence.NewGormTransactionRepository(db.DB)
	items := persistence.NewGormInventoryRepository(db.DB)
	tasks := persistence.NewGormTaskRepository(db.DB)
	orders := persistence.NewGormOrderRepository(db.DB)
	devices := persistence.NewGormDeviceTokenRepository(db.DB)

	bus := event.NewInMemoryEventBus(log)
	ledger.Register(bus, ledger.NewPoster(txs, log), log)

	aggregator, err := report.NewAggregator(report.Repositories{
		Clients:      clients,
		Transactions: txs,
		Items:        items,
		Tasks:        tasks,
		Orders:       orders,
		Employees:    employees,
	}, "USD", "en-US", nil, log)
	require.NoError(t, err)

	clientH := NewClientHandler(client.NewClientService(clients))
	employeeH := NewEmployeeHandler(
		employee.NewEmployeeService(employees, bus, log),
		ledger.NewShiftTracker(employees, cache.NewInMemoryShiftStore(), bus, log),
	)
	financeH := NewFinanceHandler(finance.NewFinanceService(txs))
	inventoryH := NewInventoryHandler(inventory.NewInventoryService(items, bus, log))
	taskH := NewTaskHandler(task.NewTaskService(tasks))
	orderH := NewOrderHandler(order.NewOrderService(orders, nil, log))
	dashboardH := NewDashboardHandler(aggregator)
	deviceH := NewDeviceHandler(notification.NewDeviceService(devices))

	r := gin.New()
	r.Use(middleware.RequestID(), func(c *gin.Context) {
		if owner := c.GetHeader(testOwnerHeader); owner != "" {
			c.Set(middleware.JWTOwnerIDKey, owner)
		}
		c.Next()
	})
	api := r.Group("/api/v1")

	g := api.Group("/clients")
	g.GET("", clientH.List)
	g.POST("", clientH.Create)
	g.GET("/:id", clientH.GetByID)
	g.PUT("/:id", clientH.Update)
	g.DELETE("/:id", clientH.Delete)

	g = api.Group("/employees")
	g.GET("", employeeH.List)
	g.POST("", employeeH.Create)
	g.GET("/payroll", employeeH.Payroll)
	g.GET("/shifts", employeeH.ActiveShifts)
	g.GET("/:id", employeeH.GetByID)
	g.PUT("/:id", employeeH.Update)
	g.DELETE("/:id", employeeH.Delete)
	g.POST("/:id/shift/start", employeeH.StartShift)
	g.POST("/:id/shift/end", employeeH.EndShift)

	g = api.Group("/finances")
	g.GET("", financeH.List)
	g.POST("", financeH.Create)
	g.GET("/summary", financeH.Summary)
	g.GET("/:id", financeH.GetByID)
	g.PUT("/:id", financeH.Update)
	g.DELETE("/:id", financeH.Delete)

	g = api.Group("/inventory")
	g.GET("", inventoryH.List)
	g.POST("", inventoryH.Create)
	g.GET("/categories", inventoryH.Categories)
	g.GET("/:id", inventoryH.GetByID)
	g.PUT("/:id", inventoryH.Update)
	g.DELETE("/:id", inventoryH.Delete)

	g = api.Group("/tasks")
	g.GET("", taskH.List)
	g.POST("", taskH.Create)
	g.GET("/:id", taskH.GetByID)
	g.PUT("/:id", taskH.Update)
	g.PUT("/:id/status", taskH.MarkAs)
	g.DELETE("/:id", taskH.Delete)

	g = api.Group("/orders")
	g.GET("", orderH.List)
	g.POST("", orderH.Create)
	g.GET("/:id", orderH.GetByID)
	g.PUT("/:id", orderH.Update)
	g.DELETE("/:id", orderH.Delete)

	api.GET("/reports/summary", dashboardH.Summary)
	api.GET("/notifications/devices", deviceH.List)
	api.POST("/notifications/devices", deviceH.Register)
	api.DELETE("/notifications/devices/:token", deviceH.Unregister)

	return &testStack{router: r}
}

// do sends body as JSON on behalf of owner; a nil owner sends no identity
func (s *testStack) do(t *testing.T, owner uuid.UUID, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if owner != uuid.Nil {
		req.Header.Set(testOwnerHeader, owner.String())
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// create posts body and returns the created record's data
func (s *testStack) create(t *testing.T, owner uuid.UUID, path string, body any) map[string]any {
	t.Helper()
	w := s.do(t, owner, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeResponse(t, w).Data.(map[string]any)
}

func dataMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	return decodeResponse(t, w).Data.(map[string]any)
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	list, ok := decodeResponse(t, w).Data.([]any)
	require.True(t, ok, w.Body.String())
	return list
}

// requireDecimal compares a JSON decimal, which shopspring renders as a string
func requireDecimal(t *testing.T, want string, got any) {
	t.Helper()
	s, ok := got.(string)
	require.True(t, ok, "expected decimal string, got %T", got)
	require.True(t, decimal.RequireFromString(want).Equal(decimal.RequireFromString(s)), "want %s got %s", want, s)
}
