package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// listRunbooksHandler handles GET /api/v1/runbooks: runbook URLs discovered
// in the configured repository. Fail-open: an unconfigured service or a
// GitHub error yields an empty list, never a 5xx.
func (s *Server) listRunbooksHandler(c *gin.Context) {
	if s.runbooks == nil {
		c.JSON(http.StatusOK, gin.H{"runbooks": []string{}})
		return
	}

	runbooks, err := s.runbooks.ListRunbooks(c.Request.Context())
	if err != nil {
		slog.Warn("Failed to list runbooks", "error", err)
		c.JSON(http.StatusOK, gin.H{"runbooks": []string{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runbooks": runbooks})
}
