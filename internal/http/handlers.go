// Package http contains the HTTP handlers for the service API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/Algebra/internal/api/middleware"
	"github.com/GriffinCanCode/Algebra/internal/logging"
	"github.com/GriffinCanCode/Algebra/internal/monitoring"
	"github.com/GriffinCanCode/Algebra/internal/service"
	"github.com/GriffinCanCode/Algebra/internal/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	ascii    bool
}

// NewHandlers creates a new handler set. ascii selects the advertised
// rendering of symbolic values in the service banner.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger, ascii bool) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		ascii:    ascii,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	rendering := "unicode"
	if h.ascii {
		rendering = "ascii"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"service":   "Algebra Service",
		"version":   "1.0.0",
		"rendering": rendering,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices discovers relevant services for a query
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

	services := h.registry.Discover(req.Query, limit)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appCtx *types.Context
	if id, ok := middleware.GetRequestID(c); ok {
		appCtx = &types.Context{RequestID: &id}
	}

	timer := monitoring.NewTimer(h.metrics, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.logger.Warn("tool execution failed",
			zap.String("tool", req.ToolID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
		RecordSentinels(h.metrics, result)
	} else {
		timer.Stop("failure")
	}

	c.JSON(http.StatusOK, result)
}

// RecordSentinels inspects an execution result and counts sentinel kinds.
// Numbers, fractions, and radicals are representable results and are not
// counted.
func RecordSentinels(metrics *monitoring.Metrics, result *types.Result) {
	if result == nil || result.Data == nil {
		return
	}
	encoded, ok := result.Data["result"].(map[string]interface{})
	if !ok {
		return
	}
	kind, ok := encoded["kind"].(string)
	if !ok {
		return
	}

	switch kind {
	case "huge", "negative_huge", "epsilon", "negative_epsilon",
		"undefined", "complex", "unknown":
		metrics.RecordSentinel(kind)
	}
}
