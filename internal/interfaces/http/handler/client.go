package handler

import (
	"github.com/bizdash/backend/internal/application/client"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	BaseHandler
	clientService *client.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *client.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List godoc
// @ID           listClients
// @Summary      List clients
// @Description  Lists the owner's clients filtered by status and a search term over name, phone and email
// @Tags         clients
// @Produce      json
// @Param        status query string false "all, active or inactive" Enums(all, active, inactive)
// @Param        search query string false "Case-insensitive search"
// @Success      200 {object} APIResponse[[]client.ClientResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var filter client.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, clients)
}

// GetByID godoc
// @ID           getClient
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Success      200 {object} APIResponse[client.ClientResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "client")
	if !ok {
		return
	}

	resp, err := h.clientService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @ID           createClient
// @Summary      Create client
// @Description  is_active defaults to true and date_added to today
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body client.ClientRequest true "Client"
// @Success      201 {object} APIResponse[client.ClientResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var req client.ClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.clientService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @ID           updateClient
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Param        request body client.ClientRequest true "Client"
// @Success      200 {object} APIResponse[client.ClientResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "client")
	if !ok {
		return
	}
	var req client.ClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.clientService.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteClient
// @Summary      Delete client
// @Tags         clients
// @Param        id path string true "Client ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "client")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
