package middleware

import (
	"time"

	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger emits one structured line per request after the handler chain ran
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetHeader("X-Request-ID"),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		// 5xx responses are logged at error level so they stand out in
		// aggregated logs
		if status >= 500 {
			logger.Error("Request failed", fields)
			return
		}
		logger.Info("Request processed", fields)
	}
}
