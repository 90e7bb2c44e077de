package handler

import (
	"github.com/bizdash/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated summary
type DashboardHandler struct {
	BaseHandler
	aggregator *report.Aggregator
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(aggregator *report.Aggregator) *DashboardHandler {
	return &DashboardHandler{aggregator: aggregator}
}

// Summary godoc
// @ID           getDashboardSummary
// @Summary      Dashboard summary
// @Description  Recomputed from every collection on each call. Collections that failed to load are listed in degraded.
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse[report.SummaryResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}

	resp, err := h.aggregator.Summary(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
