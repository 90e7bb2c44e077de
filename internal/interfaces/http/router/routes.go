package router

import (
	"time"

	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/infrastructure/logger"
	"github.com/bizdash/backend/internal/infrastructure/telemetry"
	"github.com/bizdash/backend/internal/interfaces/http/handler"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	System    *handler.SystemHandler
	Auth      *handler.AuthHandler
	Clients   *handler.ClientHandler
	Employees *handler.EmployeeHandler
	Finances  *handler.FinanceHandler
	Inventory *handler.InventoryHandler
	Tasks     *handler.TaskHandler
	Orders    *handler.OrderHandler
	Dashboard *handler.DashboardHandler
	Devices   *handler.DeviceHandler
}

// Options carries the shared infrastructure the engine is built on
type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	// Metrics is optional; nil disables request metrics and /metrics
	Metrics *telemetry.Metrics
	// Limiter throttles every API request; nil disables it
	Limiter *middleware.RateLimiter
	// AuthLimiter throttles sign-up, sign-in and refresh per IP; nil disables it
	AuthLimiter *middleware.RateLimiter
}

// NewEngine builds the gin engine with the global middleware stack and
// every route mounted
func NewEngine(opts Options, h Handlers) *gin.Engine {
	cfg := opts.Config
	log := opts.Logger

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters: the request ID feeds the access log and the span, and
	// the error marker must sit inside the span.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if opts.Metrics != nil {
		engine.Use(middleware.HTTPMetrics(opts.Metrics))
	}

	engine.GET("/health", h.System.Health)
	if opts.Metrics != nil && cfg.Telemetry.MetricsEnabled {
		engine.GET(cfg.Telemetry.MetricsPath, gin.WrapH(opts.Metrics.Handler()))
	}

	jwtConfig := middleware.DefaultJWTConfig(opts.JWTService)
	jwtConfig.TokenBlacklist = opts.Blacklist
	jwtConfig.Logger = log
	jwtAuth := middleware.JWTAuthMiddlewareWithConfig(jwtConfig)

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService:     opts.JWTService,
			TokenBlacklist: opts.Blacklist,
			Logger:         log,
		})),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := NewRouter(engine, WithAPIVersion("v1"))
	r.Use(jwtAuth, middleware.TracingAttributeInjector())
	if opts.Limiter != nil {
		// after JWT so signed-in callers are keyed by owner
		r.Use(middleware.RateLimit(opts.Limiter))
	}
	r.Register(apiRoutes(h, opts.AuthLimiter)...)
	api := r.Setup()
	api.GET("/health", h.System.Health)

	return engine
}

func apiRoutes(h Handlers, authLimiter *middleware.RateLimiter) []RouteRegistrar {
	credentials := []gin.HandlerFunc{}
	if authLimiter != nil {
		credentials = append(credentials, middleware.AuthRateLimit(authLimiter))
	}
	withCredentialLimit := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, credentials...), fn)
	}

	authRoutes := NewDomainGroup("auth", "/identity/auth")
	authRoutes.POST("/signup", withCredentialLimit(h.Auth.SignUp)...)
	authRoutes.POST("/signin", withCredentialLimit(h.Auth.SignIn)...)
	authRoutes.POST("/refresh", withCredentialLimit(h.Auth.Refresh)...)
	authRoutes.POST("/signout", h.Auth.SignOut)
	authRoutes.GET("/me", h.Auth.Me)

	clientRoutes := NewDomainGroup("clients", "/clients")
	clientRoutes.GET("", h.Clients.List)
	clientRoutes.POST("", h.Clients.Create)
	clientRoutes.GET("/:id", h.Clients.GetByID)
	clientRoutes.PUT("/:id", h.Clients.Update)
	clientRoutes.DELETE("/:id", h.Clients.Delete)

	employeeRoutes := NewDomainGroup("employees", "/employees")
	employeeRoutes.GET("", h.Employees.List)
	employeeRoutes.POST("", h.Employees.Create)
	employeeRoutes.GET("/payroll", h.Employees.Payroll)
	employeeRoutes.GET("/shifts", h.Employees.ActiveShifts)
	employeeRoutes.GET("/:id", h.Employees.GetByID)
	employeeRoutes.PUT("/:id", h.Employees.Update)
	employeeRoutes.DELETE("/:id", h.Employees.Delete)
	employeeRoutes.POST("/:id/shift/start", h.Employees.StartShift)
	employeeRoutes.POST("/:id/shift/end", h.Employees.EndShift)

	financeRoutes := NewDomainGroup("finances", "/finances")
	financeRoutes.GET("", h.Finances.List)
	financeRoutes.POST("", h.Finances.Create)
	financeRoutes.GET("/summary", h.Finances.Summary)
	financeRoutes.GET("/:id", h.Finances.GetByID)
	financeRoutes.PUT("/:id", h.Finances.Update)
	financeRoutes.DELETE("/:id", h.Finances.Delete)

	inventoryRoutes := NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.GET("", h.Inventory.List)
	inventoryRoutes.POST("", h.Inventory.Create)
	inventoryRoutes.GET("/categories", h.Inventory.Categories)
	inventoryRoutes.GET("/:id", h.Inventory.GetByID)
	inventoryRoutes.PUT("/:id", h.Inventory.Update)
	inventoryRoutes.DELETE("/:id", h.Inventory.Delete)

	taskRoutes := NewDomainGroup("tasks", "/tasks")
	taskRoutes.GET("", h.Tasks.List)
	taskRoutes.POST("", h.Tasks.Create)
	taskRoutes.GET("/:id", h.Tasks.GetByID)
	taskRoutes.PUT("/:id", h.Tasks.Update)
	taskRoutes.PUT("/:id/status", h.Tasks.MarkAs)
	taskRoutes.DELETE("/:id", h.Tasks.Delete)

	orderRoutes := NewDomainGroup("orders", "/orders")
	orderRoutes.GET("", h.Orders.List)
	orderRoutes.POST("", h.Orders.Create)
	orderRoutes.GET("/:id", h.Orders.GetByID)
	orderRoutes.PUT("/:id", h.Orders.Update)
	orderRoutes.DELETE("/:id", h.Orders.Delete)

	reportRoutes := NewDomainGroup("reports", "/reports")
	reportRoutes.GET("/summary", h.Dashboard.Summary)

	notificationRoutes := NewDomainGroup("notifications", "/notifications")
	notificationRoutes.GET("/devices", h.Devices.List)
	notificationRoutes.POST("/devices", h.Devices.Register)
	notificationRoutes.DELETE("/devices/:token", h.Devices.Unregister)

	systemRoutes := NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", h.System.GetSystemInfo)

	return []RouteRegistrar{
		authRoutes,
		clientRoutes,
		employeeRoutes,
		financeRoutes,
		inventoryRoutes,
		taskRoutes,
		orderRoutes,
		reportRoutes,
		notificationRoutes,
		systemRoutes,
	}
}
