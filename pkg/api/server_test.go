package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/alert"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/queue"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAlerts struct {
	submitSess *ent.Session
	submitDup  bool
	submitErr  error
	lastInput  alert.SubmitInput

	resumeSess *ent.Session
	resumeErr  error
	resumedID  string
}

func (f *fakeAlerts) Submit(ctx context.Context, input alert.SubmitInput) (*ent.Session, bool, error) {
	f.lastInput = input
	return f.submitSess, f.submitDup, f.submitErr
}

func (f *fakeAlerts) Resume(ctx context.Context, sessionID string) (*ent.Session, error) {
	f.resumedID = sessionID
	return f.resumeSess, f.resumeErr
}

type fakeHistory struct {
	sessions    map[string]*ent.Session
	stages      map[string][]*ent.StageExecution
	warnings    []*ent.Warning
	lastFilters *history.SessionFilters
	updated     map[string]entsession.Status
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{
		sessions: make(map[string]*ent.Session),
		stages:   make(map[string][]*ent.StageExecution),
		updated:  make(map[string]entsession.Status),
	}
}

func (f *fakeHistory) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", history.ErrNotFound, sessionID)
	}
	return sess, nil
}

func (f *fakeHistory) ListSessions(ctx context.Context, filters *history.SessionFilters) ([]*ent.Session, int, error) {
	f.lastFilters = filters
	out := make([]*ent.Session, 0, len(f.sessions))
	for _, sess := range f.sessions {
		out = append(out, sess)
	}
	return out, len(out), nil
}

func (f *fakeHistory) ListStageExecutions(ctx context.Context, sessionID string) ([]*ent.StageExecution, error) {
	return f.stages[sessionID], nil
}

func (f *fakeHistory) ListWarnings(ctx context.Context) ([]*ent.Warning, error) {
	return f.warnings, nil
}

func (f *fakeHistory) UpdateSessionStatus(ctx context.Context, sessionID string, status entsession.Status, errorMessage string) (*ent.Session, error) {
	sess, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", history.ErrNotFound, sessionID)
	}
	sess.Status = status
	f.updated[sessionID] = status
	return sess, nil
}

type fakeRegistry struct {
	running   map[string]bool
	cancelled []string
}

func (f *fakeRegistry) RequestCancel(sessionID string) bool {
	if f.running[sessionID] {
		f.cancelled = append(f.cancelled, sessionID)
		return true
	}
	return false
}

func (f *fakeRegistry) IsRunning(sessionID string) bool {
	return f.running[sessionID]
}

type fakePool struct {
	shuttingDown bool
}

func (f *fakePool) Health() queue.PoolHealth {
	return queue.PoolHealth{PodID: "pod-1", MaxConcurrent: 5, ShuttingDown: f.shuttingDown}
}

func (f *fakePool) ShuttingDown() bool {
	return f.shuttingDown
}

type recordSink struct {
	payloads []events.SessionEventPayload
}

func (r *recordSink) PublishSessionEvent(ctx context.Context, payload events.SessionEventPayload) error {
	r.payloads = append(r.payloads, payload)
	return nil
}

type fakeRunbooks struct {
	urls []string
	err  error
}

func (f *fakeRunbooks) ListRunbooks(ctx context.Context) ([]string, error) {
	return f.urls, f.err
}

type testHarness struct {
	server   *Server
	alerts   *fakeAlerts
	repo     *fakeHistory
	registry *fakeRegistry
	pool     *fakePool
	sink     *recordSink
	runbooks *fakeRunbooks
}

func newTestHarness() *testHarness {
	h := &testHarness{
		alerts:   &fakeAlerts{},
		repo:     newFakeHistory(),
		registry: &fakeRegistry{running: make(map[string]bool)},
		pool:     &fakePool{},
		sink:     &recordSink{},
		runbooks: &fakeRunbooks{},
	}
	h.server = NewServer(&config.Config{}, h.alerts, h.repo, h.registry, h.pool, h.sink, h.runbooks, nil)
	return h
}

func (h *testHarness) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, body interface{}) *bytes.Reader {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(encoded)
}

func stringBody(s string) *bytes.Reader {
	return bytes.NewReader([]byte(s))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	h := newTestHarness()

	rec := h.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "pod-1", body["pod_id"])

	h.pool.shuttingDown = true
	rec = h.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "shutting_down", decodeBody(t, rec)["status"])
}
