package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/queue"
)

func strPtr(s string) *string { return &s }

func seedSession(h *testHarness, id string, status entsession.Status) *ent.Session {
	sess := &ent.Session{
		ID:          id,
		AlertType:   "kubernetes",
		ChainID:     "kubernetes-chain",
		Status:      status,
		CreatedAtUs: 1_700_000_000_000_000,
		AlertData:   map[string]interface{}{"message": "pod crash looping"},
	}
	h.repo.sessions[id] = sess
	return sess
}

func TestListSessions(t *testing.T) {
	h := newTestHarness()
	seedSession(h, "sess-1", entsession.StatusCompleted)
	seedSession(h, "sess-2", entsession.StatusPending)

	rec := h.do(t, http.MethodGet, "/api/v1/sessions?status=completed&alert_type=kubernetes&page=2&page_size=10", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, h.repo.lastFilters)
	assert.Equal(t, []entsession.Status{entsession.StatusCompleted}, h.repo.lastFilters.Status)
	assert.Equal(t, "kubernetes", h.repo.lastFilters.AlertType)
	assert.Equal(t, 2, h.repo.lastFilters.Page)
	assert.Equal(t, 10, h.repo.lastFilters.PageSize)

	body := decodeBody(t, rec)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(2), pagination["total"])
}

func TestListSessions_InvalidStatus(t *testing.T) {
	h := newTestHarness()

	rec := h.do(t, http.MethodGet, "/api/v1/sessions?status=bogus", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "invalid status filter")
}

func TestGetSession(t *testing.T) {
	h := newTestHarness()
	sess := seedSession(h, "sess-1", entsession.StatusCompleted)
	sess.FinalAnalysis = strPtr("# Alert Analysis Report")

	rec := h.do(t, http.MethodGet, "/api/v1/sessions/sess-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "sess-1", body["session_id"])
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "# Alert Analysis Report", body["final_analysis"])
	assert.NotNil(t, body["alert_data"])
}

func TestGetSession_NotFound(t *testing.T) {
	h := newTestHarness()

	rec := h.do(t, http.MethodGet, "/api/v1/sessions/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListStages(t *testing.T) {
	h := newTestHarness()
	seedSession(h, "sess-1", entsession.StatusInProgress)
	h.repo.stages["sess-1"] = []*ent.StageExecution{
		{
			ID:           "exec-1",
			SessionID:    "sess-1",
			StageIndex:   0,
			StageID:      "investigation-1",
			StageName:    "investigation",
			Agent:        "KubernetesAgent",
			Status:       stageexecution.Status("completed"),
			ParallelType: stageexecution.ParallelType("single"),
		},
	}

	rec := h.do(t, http.MethodGet, "/api/v1/sessions/sess-1/stages", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	stages := body["stages"].([]interface{})
	require.Len(t, stages, 1)
	first := stages[0].(map[string]interface{})
	assert.Equal(t, "investigation-1", first["stage_id"])
	assert.Equal(t, "KubernetesAgent", first["agent"])
}

func TestCancelSession_RunningOnThisPod(t *testing.T) {
	h := newTestHarness()
	seedSession(h, "sess-1", entsession.StatusInProgress)
	h.registry.running["sess-1"] = true

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/cancel", nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "cancelling", decodeBody(t, rec)["status"])
	assert.Equal(t, []string{"sess-1"}, h.registry.cancelled)
	assert.Empty(t, h.repo.updated, "registry path must not write the status directly")
}

func TestCancelSession_Pending(t *testing.T) {
	h := newTestHarness()
	seedSession(h, "sess-1", entsession.StatusPending)

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/cancel", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entsession.StatusCancelled, h.repo.updated["sess-1"])
	require.Len(t, h.sink.payloads, 1)
	assert.Equal(t, events.EventTypeSessionCancelled, h.sink.payloads[0].Type)
	assert.Equal(t, "sess-1", h.sink.payloads[0].SessionID)
}

func TestCancelSession_RunningElsewhere(t *testing.T) {
	h := newTestHarness()
	seedSession(h, "sess-1", entsession.StatusInProgress)

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/cancel", nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "another pod")
}

func TestCancelSession_Terminal(t *testing.T) {
	h := newTestHarness()
	seedSession(h, "sess-1", entsession.StatusCompleted)

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/cancel", nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "not in a cancellable state")
}

func TestResumeSession(t *testing.T) {
	h := newTestHarness()
	h.alerts.resumeSess = &ent.Session{ID: "sess-1", Status: entsession.StatusInProgress}

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/resume", nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "sess-1", h.alerts.resumedID)
	assert.Equal(t, "in_progress", decodeBody(t, rec)["status"])
}

func TestResumeSession_NotPaused(t *testing.T) {
	h := newTestHarness()
	h.alerts.resumeErr = fmt.Errorf("%w: session sess-1 is not paused", history.ErrConflict)

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/resume", nil)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestResumeSession_AtCapacity(t *testing.T) {
	h := newTestHarness()
	h.alerts.resumeErr = fmt.Errorf("launch failed: %w", queue.ErrAtCapacity)

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/resume", nil)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
}

func TestWarnings(t *testing.T) {
	h := newTestHarness()
	h.repo.warnings = []*ent.Warning{
		{ID: "w-1", Category: "mcp_initialization", ServerID: "kubernetes-server", Message: "health probe failing"},
	}

	rec := h.do(t, http.MethodGet, "/api/v1/system/warnings", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	warnings := decodeBody(t, rec)["warnings"].([]interface{})
	require.Len(t, warnings, 1)
	first := warnings[0].(map[string]interface{})
	assert.Equal(t, "mcp_initialization", first["category"])
	assert.Equal(t, "kubernetes-server", first["server_id"])
}
