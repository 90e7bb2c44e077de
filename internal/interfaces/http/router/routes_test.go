package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/infrastructure/telemetry"
	"github.com/bizdash/backend/internal/interfaces/http/handler"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type engineEnv struct {
	jwt     *auth.JWTService
	metrics *telemetry.Metrics
	opts    Options
	h       Handlers
}

func newEngineEnv(t *testing.T) *engineEnv {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Name: "bizdash", Env: "test"},
		HTTP: config.HTTPConfig{
			MaxBodySize:      1 << 20,
			CORSAllowOrigins: []string{"http://localhost:3000"},
			CORSAllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
			CORSAllowHeaders: []string{"Authorization", "Content-Type"},
		},
		Telemetry: config.TelemetryConfig{
			ServiceName:    "bizdash-test",
			MetricsEnabled: true,
			MetricsPath:    "/metrics",
		},
	}
	jwtSvc := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "test-issuer",
	})
	metrics := telemetry.NewMetrics("bizdash_test")

	return &engineEnv{
		jwt:     jwtSvc,
		metrics: metrics,
		opts: Options{
			Config:     cfg,
			Logger:     zap.NewNop(),
			JWTService: jwtSvc,
			Blacklist:  auth.NewInMemoryTokenBlacklist(),
			Metrics:    metrics,
		},
		// Collection handlers are never reached: every request below stops at
		// authentication, and the auth handler only sees malformed bodies.
		h: Handlers{
			System: handler.NewSystemHandler("bizdash", "test", nil),
			Auth:   handler.NewAuthHandler(nil),
		},
	}
}

func serve(env *engineEnv, method, path, token string) *httptest.ResponseRecorder {
	engine := NewEngine(env.opts, env.h)
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewEngine_HealthIsPublic(t *testing.T) {
	env := newEngineEnv(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		w := serve(env, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	}
}

func TestNewEngine_HealthReportsFailingCheck(t *testing.T) {
	env := newEngineEnv(t)
	env.h.System = handler.NewSystemHandler("bizdash", "test", map[string]handler.HealthCheck{
		"database": func(context.Context) error { return errors.New("down") },
	})

	w := serve(env, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNewEngine_APIRequiresToken(t *testing.T) {
	env := newEngineEnv(t)

	for _, path := range []string{
		"/api/v1/clients",
		"/api/v1/employees/payroll",
		"/api/v1/reports/summary",
		"/api/v1/notifications/devices",
		"/api/v1/system/info",
	} {
		w := serve(env, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestNewEngine_SystemInfoWithToken(t *testing.T) {
	env := newEngineEnv(t)
	pair, err := env.jwt.GenerateTokenPair(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	w := serve(env, http.MethodGet, "/api/v1/system/info", pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bizdash")
}

func TestNewEngine_MetricsEndpoint(t *testing.T) {
	env := newEngineEnv(t)
	engine := NewEngine(env.opts, env.h)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bizdash_test_http_requests_total")
}

func TestNewEngine_WithoutMetrics(t *testing.T) {
	env := newEngineEnv(t)
	env.opts.Metrics = nil

	w := serve(env, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewEngine_SwaggerDisabled(t *testing.T) {
	env := newEngineEnv(t)

	w := serve(env, http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewEngine_AuthRateLimit(t *testing.T) {
	env := newEngineEnv(t)
	limiter := middleware.NewRateLimiter(1, time.Minute)
	t.Cleanup(limiter.Stop)
	env.opts.AuthLimiter = limiter
	engine := NewEngine(env.opts, env.h)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/identity/auth/signin", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/identity/auth/signin", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
