package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request via slog instead of gin's
// default writer-based logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// rejectDuringShutdown turns away work-creating requests while the pool
// drains, pointing clients at another replica.
func (s *Server) rejectDuringShutdown(c *gin.Context) {
	if s.pool != nil && s.pool.ShuttingDown() {
		c.Header("Retry-After", "30")
		c.AbortWithStatusJSON(http.StatusServiceUnavailable,
			errorResponse{Error: "service is shutting down, retry against another replica"})
		return
	}
	c.Next()
}

// extractAuthor reads the caller identity from proxy headers.
// Priority: X-Forwarded-User > X-Forwarded-Email > X-Remote-User > "api-client".
func extractAuthor(c *gin.Context) string {
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.GetHeader("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}
