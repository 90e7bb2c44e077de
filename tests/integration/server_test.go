package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/application/client"
	"github.com/bizdash/backend/internal/application/employee"
	"github.com/bizdash/backend/internal/application/finance"
	"github.com/bizdash/backend/internal/application/identity"
	"github.com/bizdash/backend/internal/application/inventory"
	"github.com/bizdash/backend/internal/application/ledger"
	"github.com/bizdash/backend/internal/application/notification"
	"github.com/bizdash/backend/internal/application/order"
	"github.com/bizdash/backend/internal/application/report"
	"github.com/bizdash/backend/internal/application/task"
	domainemployee "github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/infrastructure/event"
	"github.com/bizdash/backend/internal/infrastructure/persistence"
	"github.com/bizdash/backend/internal/infrastructure/telemetry"
	"github.com/bizdash/backend/internal/interfaces/http/handler"
	"github.com/bizdash/backend/internal/interfaces/http/router"
	"github.com/bizdash/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeClock lets shift tests move time forward
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// apiServer is the full HTTP stack wired the way the server binary wires it
type apiServer struct {
	Engine  *gin.Engine
	Auth    *identity.AuthService
	Clock   *fakeClock
	Metrics *telemetry.Metrics
}

func newAPIServer(t *testing.T, db *persistence.Database, blacklist auth.TokenBlacklist, shifts domainemployee.ShiftStore) *apiServer {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Name: "bizdash", Env: "test"},
		JWT: config.JWTConfig{
			Secret:                 "integration-secret-key-32-characters",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: 24 * time.Hour,
			Issuer:                 "bizdash-test",
		},
		HTTP:      config.HTTPConfig{MaxBodySize: 1 << 20},
		Report:    config.ReportConfig{Currency: "USD", Locale: "en-US"},
		Telemetry: config.TelemetryConfig{ServiceName: "bizdash-test", MetricsEnabled: true, MetricsPath: "/metrics"},
	}
	log := zap.NewNop()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	metrics := telemetry.NewMetrics("bizdash_it")
	opts := []ledger.Option{ledger.WithClock(clock.Now), ledger.WithPostingRecorder(metrics), ledger.WithShiftGauge(metrics)}

	users := persistence.NewGormUserRepository(db.DB)
	clients := persistence.NewGormClientRepository(db.DB)
	employees := persistence.NewGormEmployeeRepository(db.DB)
	txs := persistence.NewGormTransactionRepository(db.DB)
	items := persistence.NewGormInventoryRepository(db.DB)
	tasks := persistence.NewGormTaskRepository(db.DB)
	orders := persistence.NewGormOrderRepository(db.DB)
	devices := persistence.NewGormDeviceTokenRepository(db.DB)

	bus := event.NewInMemoryEventBus(log)
	ledger.Register(bus, ledger.NewPoster(txs, log, opts...), log)
	require.NoError(t, bus.Start(context.Background()))

	jwtSvc := auth.NewJWTService(cfg.JWT)
	authSvc := identity.NewAuthService(users, jwtSvc, blacklist, bus, log)
	aggregator, err := report.NewAggregator(report.Repositories{
		Clients:      clients,
		Transactions: txs,
		Items:        items,
		Tasks:        tasks,
		Orders:       orders,
		Employees:    employees,
	}, cfg.Report.Currency, cfg.Report.Locale, metrics, log)
	require.NoError(t, err)

	engine := router.NewEngine(router.Options{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtSvc,
		Blacklist:  blacklist,
		Metrics:    metrics,
	}, router.Handlers{
		System:    handler.NewSystemHandler("bizdash", "test", map[string]handler.HealthCheck{"database": func(context.Context) error { return db.Ping() }}),
		Auth:      handler.NewAuthHandler(authSvc),
		Clients:   handler.NewClientHandler(client.NewClientService(clients)),
		Employees: handler.NewEmployeeHandler(employee.NewEmployeeService(employees, bus, log), ledger.NewShiftTracker(employees, shifts, bus, log, opts...)),
		Finances:  handler.NewFinanceHandler(finance.NewFinanceService(txs)),
		Inventory: handler.NewInventoryHandler(inventory.NewInventoryService(items, bus, log)),
		Tasks:     handler.NewTaskHandler(task.NewTaskService(tasks)),
		Orders:    handler.NewOrderHandler(order.NewOrderService(orders, nil, log)),
		Dashboard: handler.NewDashboardHandler(aggregator),
		Devices:   handler.NewDeviceHandler(notification.NewDeviceService(devices)),
	})

	return &apiServer{Engine: engine, Auth: authSvc, Clock: clock, Metrics: metrics}
}

// signedIn signs up, approves and signs in an owner, returning a client
// that carries the access token
func (s *apiServer) signedIn(t *testing.T, email string) (*testutil.APIClient, identity.SignInResponse) {
	t.Helper()

	api := testutil.NewAPIClient(t, s.Engine)
	w := api.Do("POST", "/api/v1/identity/auth/signup", map[string]any{
		"email":         email,
		"password":      "s3cret-pass",
		"full_name":     "Test Owner",
		"business_name": "Test Shop",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	_, err := s.Auth.Approve(context.Background(), email)
	require.NoError(t, err)

	w = api.Do("POST", "/api/v1/identity/auth/signin", map[string]any{"email": email, "password": "s3cret-pass"})
	require.Equal(t, 200, w.Code, w.Body.String())
	session := testutil.DecodeData[identity.SignInResponse](t, w)
	return api.WithToken(session.Token.AccessToken), session
}
