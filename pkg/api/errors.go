package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-ai/tarsy/pkg/alert"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/queue"
)

// errorResponse is the JSON error envelope for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps service-layer errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case alert.IsValidationError(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, history.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, history.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, queue.ErrAtCapacity):
		c.Header("Retry-After", "30")
		c.JSON(http.StatusTooManyRequests, errorResponse{Error: "worker pool at capacity, retry later"})
	case errors.Is(err, queue.ErrShuttingDown), errors.Is(err, queue.ErrNotStarted):
		c.Header("Retry-After", "30")
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "service unavailable, retry against another replica"})
	default:
		slog.Error("unexpected service error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
