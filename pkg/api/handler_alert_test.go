package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/alert"
)

func TestSubmitAlert_Accepted(t *testing.T) {
	h := newTestHarness()
	h.alerts.submitSess = &ent.Session{ID: "sess-1", Status: entsession.StatusPending}

	rec := h.do(t, http.MethodPost, "/api/v1/alerts", SubmitAlertRequest{
		AlertType: "kubernetes",
		Runbook:   "https://github.com/org/runbooks/blob/main/k8s.md",
		Data:      map[string]interface{}{"message": "pod crash looping"},
	})

	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "sess-1", body["session_id"])
	assert.Equal(t, "queued", body["status"])

	assert.Equal(t, "kubernetes", h.alerts.lastInput.AlertType)
	assert.Equal(t, "pod crash looping", h.alerts.lastInput.AlertData["message"])
	assert.Equal(t, "api-client", h.alerts.lastInput.Author)
}

func TestSubmitAlert_AuthorFromProxyHeader(t *testing.T) {
	h := newTestHarness()
	h.alerts.submitSess = &ent.Session{ID: "sess-1"}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts",
		jsonBody(t, SubmitAlertRequest{AlertType: "kubernetes", Data: map[string]interface{}{"m": "x"}}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-User", "sre@example.com")
	rec := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "sre@example.com", h.alerts.lastInput.Author)
}

func TestSubmitAlert_Duplicate(t *testing.T) {
	h := newTestHarness()
	h.alerts.submitSess = &ent.Session{ID: "orig-1"}
	h.alerts.submitDup = true

	rec := h.do(t, http.MethodPost, "/api/v1/alerts", SubmitAlertRequest{
		AlertType: "kubernetes",
		Data:      map[string]interface{}{"message": "same alert"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "orig-1", body["session_id"])
	assert.Equal(t, "duplicate", body["status"])
}

func TestSubmitAlert_ValidationError(t *testing.T) {
	h := newTestHarness()
	h.alerts.submitErr = &alert.ValidationError{Field: "data", Message: "alert data is required"}

	rec := h.do(t, http.MethodPost, "/api/v1/alerts", SubmitAlertRequest{AlertType: "kubernetes"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "alert data is required")
}

func TestSubmitAlert_MalformedJSON(t *testing.T) {
	h := newTestHarness()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", stringBody("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAlert_RejectedDuringShutdown(t *testing.T) {
	h := newTestHarness()
	h.pool.shuttingDown = true

	rec := h.do(t, http.MethodPost, "/api/v1/alerts", SubmitAlertRequest{
		AlertType: "kubernetes",
		Data:      map[string]interface{}{"message": "x"},
	})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
}

func TestSubmitAlert_InternalError(t *testing.T) {
	h := newTestHarness()
	h.alerts.submitErr = fmt.Errorf("database down")

	rec := h.do(t, http.MethodPost, "/api/v1/alerts", SubmitAlertRequest{
		AlertType: "kubernetes",
		Data:      map[string]interface{}{"message": "x"},
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])
}
