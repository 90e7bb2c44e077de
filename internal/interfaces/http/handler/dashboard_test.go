package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_Summary(t *testing.T) {
	s := newTestStack(t)
	owner := uuid.New()

	s.create(t, owner, "/api/v1/clients", map[string]any{"name": "Acme"})
	s.create(t, owner, "/api/v1/clients", map[string]any{"name": "Blue", "is_active": false})
	s.create(t, owner, "/api/v1/finances", map[string]any{"type": "income", "amount": "1000"})
	s.create(t, owner, "/api/v1/finances", map[string]any{"type": "expense", "amount": "400"})
	s.create(t, owner, "/api/v1/tasks", map[string]any{"name": "Call Acme"})
	s.create(t, owner, "/api/v1/orders", map[string]any{"client": "Acme", "status": "processing"})

	// another owner's data never leaks in
	s.create(t, uuid.New(), "/api/v1/finances", map[string]any{"type": "income", "amount": "99999"})

	w := s.do(t, owner, http.MethodGet, "/api/v1/reports/summary", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataMap(t, w)

	clients := data["clients"].(map[string]any)
	assert.Equal(t, float64(1), clients["active"])
	assert.Equal(t, float64(2), clients["total"])

	fin := data["finance"].(map[string]any)
	requireDecimal(t, "1000", fin["income"])
	requireDecimal(t, "600", fin["net"])
	assert.Equal(t, "up", fin["trend"])
	assert.Equal(t, "60.0%", fin["trend_label"])

	assert.Equal(t, float64(1), data["tasks"].(map[string]any)["open"])
	assert.Equal(t, float64(1), data["orders"].(map[string]any)["processing"])
	assert.Equal(t, "USD", data["currency"])
	assert.Empty(t, data["degraded"])
}
