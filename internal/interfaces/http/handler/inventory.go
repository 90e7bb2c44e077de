package handler

import (
	"github.com/bizdash/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles stock items
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventory.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List godoc
// @ID           listInventoryItems
// @Summary      List inventory items
// @Tags         inventory
// @Produce      json
// @Param        category query string false "Exact category, empty or all for every category"
// @Param        search query string false "Search over name, category and supplier"
// @Success      200 {object} APIResponse[[]inventory.ItemResponse]
// @Security     BearerAuth
// @Router       /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var filter inventory.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	items, err := h.inventoryService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByID godoc
// @ID           getInventoryItem
// @Summary      Get inventory item
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Success      200 {object} APIResponse[inventory.ItemResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "item")
	if !ok {
		return
	}

	resp, err := h.inventoryService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @ID           createInventoryItem
// @Summary      Create inventory item
// @Description  The purchase cost of the initial stock is posted as an expense
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventory.ItemRequest true "Item"
// @Success      201 {object} APIResponse[inventory.ItemResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var req inventory.ItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.inventoryService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @ID           updateInventoryItem
// @Summary      Update inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        request body inventory.ItemRequest true "Item"
// @Success      200 {object} APIResponse[inventory.ItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "item")
	if !ok {
		return
	}
	var req inventory.ItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.inventoryService.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteInventoryItem
// @Summary      Delete inventory item
// @Tags         inventory
// @Param        id path string true "Item ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "item")
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Categories godoc
// @ID           listInventoryCategories
// @Summary      Distinct categories
// @Tags         inventory
// @Produce      json
// @Success      200 {object} APIResponse[[]string]
// @Security     BearerAuth
// @Router       /inventory/categories [get]
func (h *InventoryHandler) Categories(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}

	categories, err := h.inventoryService.Categories(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}
