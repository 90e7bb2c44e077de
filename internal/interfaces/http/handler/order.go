package handler

import (
	"github.com/bizdash/backend/internal/application/order"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles customer orders
type OrderHandler struct {
	BaseHandler
	orderService *order.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *order.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List godoc
// @ID           listOrders
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        search query string false "Search over order number and client"
// @Success      200 {object} APIResponse[[]order.OrderResponse]
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var filter order.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// GetByID godoc
// @ID           getOrder
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[order.OrderResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "order")
	if !ok {
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @ID           createOrder
// @Summary      Create order
// @Description  The order number (ORD-YYYY-NNN) is assigned by the server
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body order.OrderRequest true "Order"
// @Success      201 {object} APIResponse[order.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var req order.OrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @ID           updateOrder
// @Summary      Update order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body order.OrderRequest true "Order"
// @Success      200 {object} APIResponse[order.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "order")
	if !ok {
		return
	}
	var req order.OrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.orderService.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteOrder
// @Summary      Delete order
// @Tags         orders
// @Param        id path string true "Order ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "order")
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
