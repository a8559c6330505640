package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"newspulse/internal/analysis"
	"newspulse/internal/repository"
)

type NewsHandler struct {
	Repo     repository.Repository
	Analyzer *analysis.Service
}

func (h *NewsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/news")
	group.GET("", h.listNews)
	group.GET("/:id", h.getNews)
	group.POST("/:id/analyze", h.analyzeNews)
}

func (h *NewsHandler) listNews(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	symbol := strings.TrimSpace(c.Query("stock"))
	eventType := strings.TrimSpace(c.Query("event_type"))
	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)

	var symbolPtr *string
	if symbol != "" {
		upper := strings.ToUpper(symbol)
		symbolPtr = &upper
	}
	var eventTypePtr *string
	if eventType != "" {
		eventTypePtr = &eventType
	}

	params := repository.ListArticlesParams{
		Limit:     limit,
		Offset:    offset,
		Symbol:    symbolPtr,
		EventType: eventTypePtr,
	}

	items, err := h.Repo.ListArticles(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountArticles(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

func (h *NewsHandler) getNews(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid article id", nil)
		return
	}

	article, err := h.Repo.GetArticleByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if article == nil {
		Error(c, http.StatusNotFound, "article not found", nil)
		return
	}
	analyses, err := h.Repo.ListAnalysesByArticleID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"article": article, "analyses": analyses}, nil)
}

// analyzeNews re-runs the AI pipeline for one stored article, appending a new
// analysis row. Useful after a model upgrade or a malformed first attempt.
func (h *NewsHandler) analyzeNews(c *gin.Context) {
	if h.Analyzer == nil {
		Error(c, http.StatusInternalServerError, "analyzer unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid article id", nil)
		return
	}

	record, err := h.Analyzer.Reanalyze(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, record, nil)
}
