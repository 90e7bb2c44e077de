package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryHandler_PurchasePostedOnceOnCreate(t *testing.T) {
	s := newTestStack(t)
	owner := uuid.New()

	item := s.create(t, owner, "/api/v1/inventory", map[string]any{
		"name":       "Widget",
		"category":   "Parts",
		"quantity":   10,
		"unit_price": "5",
		"supplier":   "Globex",
	})
	requireDecimal(t, "50", item["value"])
	assert.Equal(t, false, item["low_stock"])

	w := s.do(t, owner, http.MethodPut, "/api/v1/inventory/"+item["id"].(string), map[string]any{
		"name":       "Widget",
		"category":   "Parts",
		"quantity":   2,
		"unit_price": "5",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, dataMap(t, w)["low_stock"])

	w = s.do(t, owner, http.MethodGet, "/api/v1/finances", nil)
	postings := dataList(t, w)
	require.Len(t, postings, 1)
	p := postings[0].(map[string]any)
	assert.Equal(t, "expense", p["type"])
	assert.Equal(t, "Inventory", p["category"])
	assert.Equal(t, "Inventory purchase: Widget", p["description"])
	requireDecimal(t, "50", p["amount"])
}

func TestInventoryHandler_CategoriesAndFilters(t *testing.T) {
	s := newTestStack(t)
	owner := uuid.New()

	s.create(t, owner, "/api/v1/inventory", map[string]any{"name": "Flour", "category": "Baking", "quantity": 20})
	s.create(t, owner, "/api/v1/inventory", map[string]any{"name": "Sugar", "category": "Baking", "quantity": 1})
	s.create(t, owner, "/api/v1/inventory", map[string]any{"name": "Boxes", "category": "Packaging", "supplier": "Flourish Paper"})
	s.create(t, owner, "/api/v1/inventory", map[string]any{"name": "Misc"})

	w := s.do(t, owner, http.MethodGet, "/api/v1/inventory/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Baking", "Packaging"}, dataList(t, w))

	w = s.do(t, owner, http.MethodGet, "/api/v1/inventory?category=Baking", nil)
	assert.Len(t, dataList(t, w), 2)

	w = s.do(t, owner, http.MethodGet, "/api/v1/inventory?search=flour", nil)
	assert.Len(t, dataList(t, w), 2)

	w = s.do(t, owner, http.MethodGet, "/api/v1/inventory", nil)
	assert.Len(t, dataList(t, w), 4)
}

func TestInventoryHandler_Validation(t *testing.T) {
	s := newTestStack(t)
	owner := uuid.New()

	w := s.do(t, owner, http.MethodPost, "/api/v1/inventory", map[string]any{"name": "Widget", "unit_price": "-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_UNIT_PRICE", decodeResponse(t, w).Error.Code)

	w = s.do(t, owner, http.MethodPost, "/api/v1/inventory", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeResponse(t, w).Error.Code)

	w = s.do(t, owner, http.MethodDelete, "/api/v1/inventory/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
