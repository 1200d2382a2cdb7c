package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	var query listSessionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	filters := &history.SessionFilters{
		AlertType: query.AlertType,
		ChainID:   query.ChainID,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	for _, raw := range query.Status {
		status := entsession.Status(raw)
		if err := entsession.StatusValidator(status); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid status filter: " + raw})
			return
		}
		filters.Status = append(filters.Status, status)
	}

	sessions, total, err := s.repo.ListSessions(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := SessionListResponse{
		Sessions: make([]SessionResponse, 0, len(sessions)),
		Pagination: Pagination{
			Page:     max(filters.Page, 1),
			PageSize: filters.PageSize,
			Total:    total,
		},
	}
	for _, sess := range sessions {
		resp.Sessions = append(resp.Sessions, sessionSummary(sess))
	}
	c.JSON(http.StatusOK, resp)
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sess, err := s.repo.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionDetail(sess))
}

// listStagesHandler handles GET /api/v1/sessions/:id/stages.
func (s *Server) listStagesHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := s.repo.GetSession(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}

	execs, err := s.repo.ListStageExecutions(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]StageResponse, 0, len(execs))
	for _, exec := range execs {
		resp = append(resp, stageResponse(exec))
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "stages": resp})
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel.
//
// A session running on this pod is cancelled through the registry; the
// session task observes the flag and settles the status itself. A pending
// or paused session has no owner, so the API transitions it directly.
func (s *Server) cancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	sess, err := s.repo.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	if s.registry.RequestCancel(sessionID) {
		c.JSON(http.StatusAccepted, gin.H{
			"session_id": sessionID,
			"status":     "cancelling",
		})
		return
	}

	switch sess.Status {
	case entsession.StatusPending, entsession.StatusPaused:
		updated, err := s.repo.UpdateSessionStatus(c.Request.Context(), sessionID,
			entsession.StatusCancelled, "Cancelled by user")
		if err != nil {
			respondError(c, err)
			return
		}
		s.publishCancelled(c, updated.ID, updated.AlertType, updated.ChainID)
		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"status":     string(entsession.StatusCancelled),
		})
	case entsession.StatusInProgress:
		c.JSON(http.StatusConflict, errorResponse{Error: "session is processing on another pod"})
	default:
		c.JSON(http.StatusConflict, errorResponse{Error: "session is not in a cancellable state"})
	}
}

// resumeSessionHandler handles POST /api/v1/sessions/:id/resume.
func (s *Server) resumeSessionHandler(c *gin.Context) {
	sess, err := s.alerts.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"session_id": sess.ID,
		"status":     string(sess.Status),
	})
}

func (s *Server) publishCancelled(c *gin.Context, sessionID, alertType, chainID string) {
	if s.sink == nil {
		return
	}
	payload := events.SessionEventPayload{
		Type:        events.EventTypeSessionCancelled,
		SessionID:   sessionID,
		AlertType:   alertType,
		ChainID:     chainID,
		Status:      string(entsession.StatusCancelled),
		TimestampUs: history.NowMicros(),
	}
	if err := s.sink.PublishSessionEvent(c.Request.Context(), payload); err != nil {
		slog.Warn("failed to publish session.cancelled", "session_id", sessionID, "error", err)
	}
}
