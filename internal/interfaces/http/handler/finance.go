package handler

import (
	"github.com/bizdash/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// FinanceHandler handles income and expense transactions
type FinanceHandler struct {
	BaseHandler
	financeService *finance.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService *finance.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// List godoc
// @ID           listTransactions
// @Summary      List transactions
// @Tags         finances
// @Produce      json
// @Param        type query string false "all, income or expense" Enums(all, income, expense)
// @Param        search query string false "Search over category and description"
// @Success      200 {object} APIResponse[[]finance.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /finances [get]
func (h *FinanceHandler) List(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var filter finance.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	txs, err := h.financeService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, txs)
}

// GetByID godoc
// @ID           getTransaction
// @Summary      Get transaction
// @Tags         finances
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      200 {object} APIResponse[finance.TransactionResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /finances/{id} [get]
func (h *FinanceHandler) GetByID(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "transaction")
	if !ok {
		return
	}

	resp, err := h.financeService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @ID           createTransaction
// @Summary      Create transaction
// @Tags         finances
// @Accept       json
// @Produce      json
// @Param        request body finance.TransactionRequest true "Transaction"
// @Success      201 {object} APIResponse[finance.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /finances [post]
func (h *FinanceHandler) Create(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var req finance.TransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.financeService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @ID           updateTransaction
// @Summary      Update transaction
// @Tags         finances
// @Accept       json
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Param        request body finance.TransactionRequest true "Transaction"
// @Success      200 {object} APIResponse[finance.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /finances/{id} [put]
func (h *FinanceHandler) Update(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "transaction")
	if !ok {
		return
	}
	var req finance.TransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.financeService.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteTransaction
// @Summary      Delete transaction
// @Tags         finances
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /finances/{id} [delete]
func (h *FinanceHandler) Delete(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "transaction")
	if !ok {
		return
	}

	if err := h.financeService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Summary godoc
// @ID           getFinanceSummary
// @Summary      Income, expense and net
// @Tags         finances
// @Produce      json
// @Success      200 {object} APIResponse[finance.SummaryResponse]
// @Security     BearerAuth
// @Router       /finances/summary [get]
func (h *FinanceHandler) Summary(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}

	resp, err := h.financeService.Summary(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
