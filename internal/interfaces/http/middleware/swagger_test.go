package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSwaggerProtection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	denyAuth := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	}
	allowAuth := func(c *gin.Context) {
		c.Set(JWTOwnerIDKey, "owner")
		c.Next()
	}

	tests := []struct {
		name       string
		cfg        SwaggerConfig
		auth       gin.HandlerFunc
		remoteAddr string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "disabled answers 404",
			cfg:        SwaggerConfig{Enabled: false},
			wantStatus: http.StatusNotFound,
			wantBody:   "NOT_FOUND",
		},
		{
			name:       "enabled without restrictions",
			cfg:        SwaggerConfig{Enabled: true},
			wantStatus: http.StatusOK,
		},
		{
			name:       "allowed IP",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr: "127.0.0.1:5000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "IP outside whitelist",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr: "192.168.1.1:5000",
			wantStatus: http.StatusForbidden,
			wantBody:   "FORBIDDEN",
		},
		{
			name:       "IP inside CIDR",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8"}},
			remoteAddr: "10.1.2.3:5000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "auth required and refused",
			cfg:        SwaggerConfig{Enabled: true, RequireAuth: true},
			auth:       denyAuth,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "auth required and granted",
			cfg:        SwaggerConfig{Enabled: true, RequireAuth: true},
			auth:       allowAuth,
			wantStatus: http.StatusOK,
		},
		{
			name:       "IP check runs before auth",
			cfg:        SwaggerConfig{Enabled: true, RequireAuth: true, AllowedIPs: []string{"127.0.0.1"}},
			auth:       allowAuth,
			remoteAddr: "192.168.1.1:5000",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/swagger/*any", SwaggerProtection(tt.cfg, tt.auth), func(c *gin.Context) {
				c.String(http.StatusOK, "docs")
			})

			req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAllowList(t *testing.T) {
	list := parseAllowList([]string{"192.168.1.1", "::1", "10.0.0.0/8", "not-an-ip", " 172.16.0.0/12 "})
	assert.Len(t, list, 4)

	assert.True(t, list.allows(netip.MustParseAddr("192.168.1.1")))
	assert.True(t, list.allows(netip.MustParseAddr("::1")))
	assert.True(t, list.allows(netip.MustParseAddr("10.0.0.5")))
	assert.True(t, list.allows(netip.MustParseAddr("172.20.1.1")))
	assert.True(t, list.allows(netip.MustParseAddr("::ffff:10.0.0.5")), "IPv4-mapped addresses match IPv4 ranges")
	assert.False(t, list.allows(netip.MustParseAddr("11.0.0.5")))
	assert.False(t, list.allows(netip.Addr{}))
}
