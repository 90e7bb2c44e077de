package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
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
	domainorder "github.com/bizdash/backend/internal/domain/order"
	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/cache"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/infrastructure/event"
	"github.com/bizdash/backend/internal/infrastructure/logger"
	"github.com/bizdash/backend/internal/infrastructure/migration"
	"github.com/bizdash/backend/internal/infrastructure/persistence"
	"github.com/bizdash/backend/internal/infrastructure/telemetry"
	"github.com/bizdash/backend/internal/interfaces/http/handler"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/bizdash/backend/internal/interfaces/http/router"
	"github.com/bizdash/backend/migrations"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/bizdash/backend/docs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Business Dashboard API
//	@version		1.0
//	@description	Back office for small businesses: clients, staff, money, stock, tasks and orders.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx := context.Background()

	// Log export shares the trace collector
	lp, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = lp.Bridge(log)

	log.Info("Starting business dashboard backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
		zap.String("db_driver", cfg.Database.Driver),
	)

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilingServerAddress,
		ApplicationName: cfg.Telemetry.ServiceName,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		tp.EnableSpanProfiles()
	}

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := prepareSchema(db, cfg, log); err != nil {
		log.Fatal("Failed to prepare database schema", zap.Error(err))
	}
	if cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.RegisterDBTracing(db.DB, db.Driver(), log); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("Database ready")

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}

	var blacklist auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	if redisClient != nil {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	}

	var shiftStore domainemployee.ShiftStore = cache.NewInMemoryShiftStore()
	if cfg.Ledger.ShiftStore == "redis" {
		if redisClient == nil {
			log.Fatal("Redis shift store requires redis.enabled")
		}
		shiftStore = cache.NewRedisShiftStore(redisClient, cfg.Ledger.ShiftKeyPrefix)
	}

	var metrics *telemetry.Metrics
	if cfg.Telemetry.MetricsEnabled {
		metrics = telemetry.NewMetrics("bizdash")
	}
	ledgerOpts := []ledger.Option{}
	var failures report.FailureRecorder
	if metrics != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithPostingRecorder(metrics), ledger.WithShiftGauge(metrics))
		failures = metrics
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	txRepo := persistence.NewGormTransactionRepository(db.DB)
	itemRepo := persistence.NewGormInventoryRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	deviceRepo := persistence.NewGormDeviceTokenRepository(db.DB)

	// Events: salary, shift and stock purchases post expenses synchronously
	bus := event.NewInMemoryEventBus(log)
	ledger.Register(bus, ledger.NewPoster(txRepo, log, ledgerOpts...), log)
	pending := identity.NewPendingApprovalHandler(log)
	bus.Subscribe(pending, pending.EventTypes()...)
	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identity.NewAuthService(userRepo, jwtService, blacklist, bus, log)
	shiftTracker := ledger.NewShiftTracker(employeeRepo, shiftStore, bus, log, ledgerOpts...)
	aggregator, err := report.NewAggregator(report.Repositories{
		Clients:      clientRepo,
		Transactions: txRepo,
		Items:        itemRepo,
		Tasks:        taskRepo,
		Orders:       orderRepo,
		Employees:    employeeRepo,
	}, cfg.Report.Currency, cfg.Report.Locale, failures, log)
	if err != nil {
		log.Fatal("Failed to initialize reporting", zap.Error(err))
	}

	healthChecks := map[string]handler.HealthCheck{
		"database": func(context.Context) error { return db.Ping() },
	}
	if redisClient != nil {
		healthChecks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	handlers := router.Handlers{
		System:    handler.NewSystemHandler(cfg.App.Name, version, healthChecks),
		Auth:      handler.NewAuthHandler(authService),
		Clients:   handler.NewClientHandler(client.NewClientService(clientRepo)),
		Employees: handler.NewEmployeeHandler(employee.NewEmployeeService(employeeRepo, bus, log), shiftTracker),
		Finances:  handler.NewFinanceHandler(finance.NewFinanceService(txRepo)),
		Inventory: handler.NewInventoryHandler(inventory.NewInventoryService(itemRepo, bus, log)),
		Tasks:     handler.NewTaskHandler(task.NewTaskService(taskRepo)),
		Orders:    handler.NewOrderHandler(order.NewOrderService(orderRepo, domainorder.NewNumberGenerator(), log)),
		Dashboard: handler.NewDashboardHandler(aggregator),
		Devices:   handler.NewDeviceHandler(notification.NewDeviceService(deviceRepo)),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	opts := router.Options{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		Blacklist:  blacklist,
		Metrics:    metrics,
		// credential endpoints get a fixed, stricter budget
		AuthLimiter: middleware.NewRateLimiter(10, time.Minute),
	}
	if cfg.HTTP.RateLimitEnabled {
		opts.Limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	}
	engine := router.NewEngine(opts, handlers)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if opts.Limiter != nil {
		opts.Limiter.Stop()
	}
	opts.AuthLimiter.Stop()
	if err := bus.Stop(shutdownCtx); err != nil {
		log.Warn("Failed to stop event bus", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush traces", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Failed to stop profiler", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := db.Close(); err != nil {
		log.Error("Failed to close database connection", zap.Error(err))
	}

	log.Info("Server exited")
	if err := lp.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush logs", zap.Error(err))
	}
}

// prepareSchema runs the embedded SQL migrations on PostgreSQL and
// auto-migrates the models on sqlite
func prepareSchema(db *persistence.Database, cfg *config.Config, log *zap.Logger) error {
	if db.Driver() == persistence.DriverSQLite {
		return db.AutoMigrate()
	}

	m, err := migration.Open(cfg.Database.DSN(), migrations.FS, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()
	return m.Up()
}
