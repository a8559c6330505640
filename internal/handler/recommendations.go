package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"newspulse/internal/repository"
)

type RecommendationHandler struct {
	Repo repository.Repository
}

func (h *RecommendationHandler) Register(r *gin.Engine) {
	group := r.Group("/api/recommendations")
	group.GET("", h.listRecommendations)
	group.GET("/top", h.topRecommendations)
}

func (h *RecommendationHandler) listRecommendations(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	action := strings.ToUpper(strings.TrimSpace(c.Query("action")))
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("stock")))
	limit := intQuery(c, "limit", 50)

	var actionPtr *string
	if action != "" {
		actionPtr = &action
	}
	var symbolPtr *string
	if symbol != "" {
		symbolPtr = &symbol
	}

	items, err := h.Repo.ListRecommendations(c.Request.Context(), repository.ListRecommendationsParams{
		Limit:         limit,
		ActiveOnly:    true,
		Now:           time.Now(),
		Action:        actionPtr,
		Symbol:        symbolPtr,
		MinConfidence: floatQueryPtr(c, "min_confidence"),
	})
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(limit, 0, int64(len(items))))
}

func (h *RecommendationHandler) topRecommendations(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 10)

	items, err := h.Repo.ListTopRecommendations(c.Request.Context(), limit, time.Now())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}
