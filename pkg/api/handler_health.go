package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// healthHandler handles GET /health. Reports 200 while serving and 503
// once shutdown starts so load balancers stop routing here.
func (s *Server) healthHandler(c *gin.Context) {
	health := s.pool.Health()

	resp := HealthResponse{
		Status: "ok",
		PodID:  health.PodID,
		Queue:  health,
	}
	if s.connections != nil {
		resp.ActiveConnections = s.connections.ActiveConnections()
	}

	if health.ShuttingDown {
		resp.Status = "shutting_down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
