package handler

import (
	"github.com/bizdash/backend/internal/application/notification"
	"github.com/gin-gonic/gin"
)

// DeviceHandler keeps push tokens
type DeviceHandler struct {
	BaseHandler
	deviceService *notification.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler
func NewDeviceHandler(deviceService *notification.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// Register godoc
// @ID           registerDevice
// @Summary      Register push token
// @Description  Re-registering a known token moves it to the caller and refreshes last_seen_at
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body notification.RegisterDeviceRequest true "Token"
// @Success      200 {object} APIResponse[notification.DeviceResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /notifications/devices [post]
func (h *DeviceHandler) Register(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var req notification.RegisterDeviceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.deviceService.Register(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List godoc
// @ID           listDevices
// @Summary      List push tokens
// @Tags         notifications
// @Produce      json
// @Success      200 {object} APIResponse[[]notification.DeviceResponse]
// @Security     BearerAuth
// @Router       /notifications/devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}

	devices, err := h.deviceService.List(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, devices)
}

// Unregister godoc
// @ID           unregisterDevice
// @Summary      Remove push token
// @Tags         notifications
// @Param        token path string true "Push token"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /notifications/devices/{token} [delete]
func (h *DeviceHandler) Unregister(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}

	if err := h.deviceService.Unregister(c.Request.Context(), ownerID, c.Param("token")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
