package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unitbox/unitbox/internal/api/middleware"
	"github.com/unitbox/unitbox/internal/domain/convert"
	"github.com/unitbox/unitbox/internal/domain/service"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/domain/unit"
	"github.com/unitbox/unitbox/internal/infrastructure/monitoring"
	"github.com/unitbox/unitbox/internal/shared/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	units      *unit.Registry
	dispatcher *convert.Dispatcher
	registry   *service.Registry
	sessions   *session.Manager
	metrics    *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(
	units *unit.Registry,
	dispatcher *convert.Dispatcher,
	registry *service.Registry,
	sessions *session.Manager,
	metrics *monitoring.Metrics,
) *Handlers {
	return &Handlers{
		units:      units,
		dispatcher: dispatcher,
		registry:   registry,
		sessions:   sessions,
		metrics:    metrics,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "UnitBox API",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"sessions":         gin.H{"active": h.sessions.Count()},
		"categories":       len(h.units.Categories()),
	})
}

// ListServices lists all registered service providers
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if q := c.Query("category"); q != "" {
		cat := types.Category(q)
		category = &cat
	}

	services := h.registry.List(category)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices ranks services against a free-form intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	services := h.registry.Discover(req.Intent, limit)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"intent":   req.Intent,
	})
}

// ExecuteService runs a tool through the service registry
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rid := middleware.GetRequestID(c)
	appCtx := &types.Context{
		SessionID: req.SessionID,
		RequestID: &rid,
	}

	parts := strings.SplitN(req.ToolID, ".", 2)
	serviceID := parts[0]
	timer := monitoring.NewTimer(h.metrics, serviceID, req.ToolID)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
	}
	timer.Stop(status)

	c.JSON(http.StatusOK, result)
}

// ListCategories lists all conversion categories
func (h *Handlers) ListCategories(c *gin.Context) {
	names := h.units.Categories()
	categories := make([]gin.H, 0, len(names))
	for _, name := range names {
		cat, err := h.units.Category(name)
		if err != nil {
			continue
		}
		categories = append(categories, gin.H{
			"name":   cat.Name,
			"base":   cat.Base,
			"affine": cat.Affine,
			"units":  len(cat.Units()),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// ListUnits lists the units of one category in registration order
func (h *Handlers) ListUnits(c *gin.Context) {
	name := c.Param("name")

	cat, err := h.units.Category(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	units := make([]gin.H, 0, len(cat.Units()))
	for _, u := range cat.Units() {
		units = append(units, gin.H{
			"id":    u.ID,
			"label": u.Label,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"category": cat.Name,
		"base":     cat.Base,
		"units":    units,
	})
}

// Convert performs one unit conversion
func (h *Handlers) Convert(c *gin.Context) {
	var req types.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log := h.sessions.Log(req.SessionID)
	outcome, err := h.dispatcher.Convert(convert.Request{
		Category:  req.Category,
		From:      req.From,
		To:        req.To,
		Value:     req.Value,
		Precision: req.Precision,
	}, log)
	if err != nil {
		h.metrics.RecordConversion(req.Category, "failure")
		c.JSON(convertStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.metrics.RecordConversion(req.Category, "success")
	if log != nil {
		h.metrics.IncHistoryRecords()
	}

	c.JSON(http.StatusOK, gin.H{
		"category":  req.Category,
		"from":      req.From,
		"to":        req.To,
		"input":     req.Value,
		"value":     outcome.Formatted,
		"precision": outcome.Precision,
	})
}

// CreateSession starts a new session
func (h *Handlers) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	h.metrics.IncSessionsTotal()
	h.metrics.SetSessionsActive(h.sessions.Count())

	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.ID,
		"created_at": s.CreatedAt,
	})
}

// DeleteSession ends a session and discards its history
func (h *Handlers) DeleteSession(c *gin.Context) {
	id := c.Param("id")

	if err := h.sessions.End(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.metrics.SetSessionsActive(h.sessions.Count())

	c.JSON(http.StatusOK, gin.H{
		"session_id": id,
		"ended":      true,
	})
}

// GetHistory returns a session's conversion history
func (h *Handlers) GetHistory(c *gin.Context) {
	id := c.Param("id")

	s, err := h.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	records := s.Log().Records()
	c.JSON(http.StatusOK, gin.H{
		"session_id": id,
		"records":    records,
		"count":      len(records),
	})
}

// convertStatus maps a conversion error to an HTTP status code
func convertStatus(err error) int {
	switch {
	case errors.Is(err, unit.ErrUnknownCategory), errors.Is(err, unit.ErrUnknownUnit):
		return http.StatusNotFound
	case errors.Is(err, convert.ErrInvalidInput), errors.Is(err, unit.ErrOutOfDomain):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
