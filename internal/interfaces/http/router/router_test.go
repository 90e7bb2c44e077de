package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func named(name string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, name) }
}

func get(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_Prefix(t *testing.T) {
	assert.Equal(t, "/api/v1", NewRouter(gin.New()).Prefix())
	assert.Equal(t, "/api/v2", NewRouter(gin.New(), WithAPIVersion("v2")).Prefix())
}

func TestRouter_SetupMountsGroupsUnderPrefix(t *testing.T) {
	engine := gin.New()

	clients := NewDomainGroup("clients", "/clients").
		GET("", named("list clients")).
		POST("", named("create client")).
		GET("/:id", named("get client")).
		PUT("/:id", named("update client")).
		DELETE("/:id", named("delete client"))
	tasks := NewDomainGroup("tasks", "/tasks").
		Handle(http.MethodPut, "/:id/status", named("mark task"))

	api := NewRouter(engine).Register(clients, tasks).Setup()
	assert.Equal(t, "/api/v1", api.BasePath())

	for _, tc := range []struct{ method, path, want string }{
		{http.MethodGet, "/api/v1/clients", "list clients"},
		{http.MethodPost, "/api/v1/clients", "create client"},
		{http.MethodGet, "/api/v1/clients/42", "get client"},
		{http.MethodPut, "/api/v1/clients/42", "update client"},
		{http.MethodDelete, "/api/v1/clients/42", "delete client"},
		{http.MethodPut, "/api/v1/tasks/7/status", "mark task"},
	} {
		w := get(engine, tc.method, tc.path)
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, tc.want, w.Body.String())
	}

	assert.Equal(t, http.StatusNotFound, get(engine, http.MethodGet, "/clients").Code)
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	engine := gin.New()
	var trail []string
	mark := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			trail = append(trail, name)
			c.Next()
		}
	}

	orders := NewDomainGroup("orders", "/orders").Use(mark("group")).GET("", named("orders"))
	NewRouter(engine).Use(mark("auth"), mark("tracing")).Register(orders).Setup()

	w := get(engine, http.MethodGet, "/api/v1/orders")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"auth", "tracing", "group"}, trail)
}

func TestRouter_GroupMiddlewareStaysInGroup(t *testing.T) {
	engine := gin.New()
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusTooManyRequests) }

	auth := NewDomainGroup("auth", "/identity/auth").POST("/signin", deny, named("signin"))
	reports := NewDomainGroup("reports", "/reports").GET("/summary", named("summary"))
	NewRouter(engine).Register(auth, reports).Setup()

	assert.Equal(t, http.StatusTooManyRequests, get(engine, http.MethodPost, "/api/v1/identity/auth/signin").Code)
	assert.Equal(t, http.StatusOK, get(engine, http.MethodGet, "/api/v1/reports/summary").Code)
}

func TestDomainGroup_Accessors(t *testing.T) {
	dg := NewDomainGroup("inventory", "/inventory")
	assert.Equal(t, "inventory", dg.Name())
	assert.Equal(t, "/inventory", dg.Prefix())
}
