package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/alert"
)

// submitAlertHandler handles POST /api/v1/alerts. The session is created
// pending and picked up by the worker pool; the response returns
// immediately with the session ID.
func (s *Server) submitAlertHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, agent.MaxAlertDataSize)

	var req SubmitAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if c.Request.ContentLength > agent.MaxAlertDataSize {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("alert data exceeds maximum size of %d bytes", agent.MaxAlertDataSize),
			})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	sess, duplicate, err := s.alerts.Submit(c.Request.Context(), alert.SubmitInput{
		AlertType:               req.AlertType,
		AlertData:               req.Data,
		RunbookURL:              req.Runbook,
		Author:                  extractAuthor(c),
		SlackMessageFingerprint: req.SlackMessageFingerprint,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if duplicate {
		c.JSON(http.StatusOK, &AlertResponse{
			SessionID: sess.ID,
			Status:    "duplicate",
			Message:   "Alert already being processed",
		})
		return
	}
	c.JSON(http.StatusAccepted, &AlertResponse{
		SessionID: sess.ID,
		Status:    "queued",
		Message:   "Alert submitted for processing",
	})
}
