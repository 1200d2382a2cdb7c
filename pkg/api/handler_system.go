package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// warningsHandler handles GET /api/v1/system/warnings: active operator
// warnings such as MCP servers failing their health probes.
func (s *Server) warningsHandler(c *gin.Context) {
	warnings, err := s.repo.ListWarnings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		resp = append(resp, warningResponse(w))
	}
	c.JSON(http.StatusOK, gin.H{"warnings": resp})
}
