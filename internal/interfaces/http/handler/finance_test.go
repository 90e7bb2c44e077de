package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceHandler_CRUDAndSummary(t *testing.T) {
	s := newTestStack(t)
	owner := uuid.New()

	income := s.create(t, owner, "/api/v1/finances", map[string]any{
		"date":        "2024-05-01",
		"type":        "income",
		"category":    "Sales",
		"amount":      "1500.50",
		"description": "Wedding cake",
	})
	assert.Equal(t, "2024-05-01", income["date"])
	s.create(t, owner, "/api/v1/finances", map[string]any{"type": "expense", "category": "Rent", "amount": "900"})

	w := s.do(t, owner, http.MethodGet, "/api/v1/finances/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := dataMap(t, w)
	requireDecimal(t, "1500.50", summary["income"])
	requireDecimal(t, "900", summary["expense"])
	requireDecimal(t, "600.50", summary["net"])

	w = s.do(t, owner, http.MethodGet, "/api/v1/finances?type=income", nil)
	assert.Len(t, dataList(t, w), 1)
	w = s.do(t, owner, http.MethodGet, "/api/v1/finances?search=wedding", nil)
	assert.Len(t, dataList(t, w), 1)
	w = s.do(t, owner, http.MethodGet, "/api/v1/finances?type=refund", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	id := income["id"].(string)
	w = s.do(t, owner, http.MethodPut, "/api/v1/finances/"+id, map[string]any{
		"date": "2024-05-02", "type": "income", "category": "Sales", "amount": "2000",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	requireDecimal(t, "2000", dataMap(t, w)["amount"])

	w = s.do(t, owner, http.MethodDelete, "/api/v1/finances/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, owner, http.MethodGet, "/api/v1/finances/summary", nil)
	requireDecimal(t, "-900", dataMap(t, w)["net"])
}

func TestFinanceHandler_Validation(t *testing.T) {
	s := newTestStack(t)
	owner := uuid.New()

	tests := []struct {
		name     string
		body     map[string]any
		wantCode string
	}{
		{"missing type", map[string]any{"amount": "10"}, "VALIDATION_ERROR"},
		{"unknown type", map[string]any{"type": "gift", "amount": "10"}, "VALIDATION_ERROR"},
		{"negative amount", map[string]any{"type": "income", "amount": "-10"}, "INVALID_AMOUNT"},
		{"bad date", map[string]any{"type": "income", "amount": "10", "date": "May 1st"}, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, owner, http.MethodPost, "/api/v1/finances", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantCode, decodeResponse(t, w).Error.Code)
		})
	}
}
