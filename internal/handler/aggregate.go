package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newspulse/internal/aggregator"
)

type AggregateHandler struct {
	Aggregator *aggregator.Service
}

func (h *AggregateHandler) Register(r *gin.Engine) {
	r.POST("/api/aggregate", h.runAggregation)
}

// runAggregation triggers a full cycle synchronously and returns its summary.
// The cron runner drives the same path on schedule.
func (h *AggregateHandler) runAggregation(c *gin.Context) {
	if h.Aggregator == nil {
		Error(c, http.StatusInternalServerError, "aggregator unavailable", nil)
		return
	}
	summary, err := h.Aggregator.Run(c.Request.Context(), "manual")
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, summary, nil)
}
