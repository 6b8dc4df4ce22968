package handler

import (
	"context"
	"net/http"

	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the ledger store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles service health checks
type HealthHandler struct {
	pinger       Pinger
	timeProvider coreport.TimeProvider
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(pinger Pinger, timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{
		pinger:       pinger,
		timeProvider: timeProvider,
	}
}

// Check handles the GET /health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   h.timeProvider.Now().UTC(),
	})
}
