package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/response"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/observability"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/services"
)

type DashboardHandler struct {
	dashboard services.DashboardService
	metrics   *observability.Metrics
}

// NewDashboardHandler accepts a nil metrics when metrics are disabled.
func NewDashboardHandler(dashboard services.DashboardService, metrics *observability.Metrics) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, metrics: metrics}
}

// Summary responds with the aggregator output verbatim.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboard.Summary(dbctx.From(c.Request.Context()))
	if err != nil {
		if errors.Is(err, services.ErrNoDataAvailable) {
			h.metrics.ObserveSummary("no_data")
		} else {
			h.metrics.ObserveSummary("error")
		}
		response.RespondAPIError(c, err)
		return
	}
	h.metrics.ObserveSummary("ok")
	response.RespondOK(c, summary)
}

func (h *DashboardHandler) Placeholders(c *gin.Context) {
	response.RespondOK(c, h.dashboard.Placeholders())
}

func (h *DashboardHandler) Profile(c *gin.Context) {
	profile, err := h.dashboard.Profile(dbctx.From(c.Request.Context()))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, profile)
}
