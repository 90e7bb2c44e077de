package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterListUnregister(t *testing.T) {
	s := newTestStack(t)
	owner := uuid.New()

	w := s.do(t, owner, http.MethodPost, "/api/v1/notifications/devices", map[string]any{"token": "fcm-abc", "platform": "android"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "android", dataMap(t, w)["platform"])

	// the same token re-registered by another owner moves to them
	other := uuid.New()
	w = s.do(t, other, http.MethodPost, "/api/v1/notifications/devices", map[string]any{"token": "fcm-abc"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, owner, http.MethodGet, "/api/v1/notifications/devices", nil)
	assert.Empty(t, dataList(t, w))
	w = s.do(t, other, http.MethodGet, "/api/v1/notifications/devices", nil)
	assert.Len(t, dataList(t, w), 1)

	w = s.do(t, owner, http.MethodDelete, "/api/v1/notifications/devices/fcm-abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(t, other, http.MethodDelete, "/api/v1/notifications/devices/fcm-abc", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, owner, http.MethodPost, "/api/v1/notifications/devices", map[string]any{"token": "x", "platform": "symbian"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
