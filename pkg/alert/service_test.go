package alert

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/chain"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// memStore is an in-memory SessionStore.
type memStore struct {
	mu       sync.Mutex
	sessions map[string]*ent.Session
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]*ent.Session)}
}

func (m *memStore) CreateSession(_ context.Context, req *history.CreateSessionRequest) (*ent.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := &ent.Session{
		ID:          req.SessionID,
		AlertType:   req.AlertType,
		AlertData:   req.AlertData,
		RunbookURL:  req.RunbookURL,
		ChainID:     req.ChainID,
		ChainConfig: req.ChainConfig,
		Status:      session.StatusPending,
		CreatedAtUs: history.NowMicros(),
	}
	m.sessions[sess.ID] = sess
	return copySession(sess), nil
}

func (m *memStore) GetSession(_ context.Context, sessionID string) (*ent.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", history.ErrNotFound, sessionID)
	}
	return copySession(sess), nil
}

func (m *memStore) UpdateSessionStatus(_ context.Context, sessionID string, status session.Status, errorMessage string) (*ent.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, history.ErrNotFound
	}
	sess.Status = status
	if errorMessage != "" {
		msg := errorMessage
		sess.ErrorMessage = &msg
	}
	return copySession(sess), nil
}

func (m *memStore) ClaimPausedSession(_ context.Context, sessionID, podID string) (*ent.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok || sess.Status != session.StatusPaused {
		return nil, fmt.Errorf("%w: session %s is not paused", history.ErrConflict, sessionID)
	}
	sess.Status = session.StatusInProgress
	pod := podID
	sess.PodID = &pod
	return copySession(sess), nil
}

func (m *memStore) SetSessionRunbook(_ context.Context, sessionID, runbook string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID].Runbook = runbook
	return nil
}

func (m *memStore) SetSessionAnalysis(_ context.Context, sessionID, analysis string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := analysis
	m.sessions[sessionID].FinalAnalysis = &a
	return nil
}

func (m *memStore) SetSessionAnalysisSummary(_ context.Context, sessionID, summary string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := summary
	m.sessions[sessionID].FinalAnalysisSummary = &s
	return nil
}

func copySession(sess *ent.Session) *ent.Session {
	dup := *sess
	return &dup
}

// fakeRunner is a scripted ChainRunner.
type fakeRunner struct {
	result     *chain.Result
	err        error
	summary    string
	summaryErr error
	executed   []string
}

func (f *fakeRunner) Execute(_ context.Context, sess *ent.Session) (*chain.Result, error) {
	f.executed = append(f.executed, sess.ID)
	return f.result, f.err
}

func (f *fakeRunner) GenerateExecutiveSummary(_ context.Context, _, _, _ string) (string, error) {
	return f.summary, f.summaryErr
}

// fakeRunbooks resolves to fixed content or a fixed error.
type fakeRunbooks struct {
	content string
	err     error
}

func (f fakeRunbooks) Resolve(_ context.Context, _ string) (string, error) {
	return f.content, f.err
}

// eventRecorder captures published session events.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.SessionEventPayload
}

func (r *eventRecorder) PublishSessionEvent(_ context.Context, payload events.SessionEventPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, payload)
	return nil
}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

// fakeLauncher records launched sessions.
type fakeLauncher struct {
	launched []*ent.Session
	err      error
}

func (f *fakeLauncher) Launch(sess *ent.Session) error {
	if f.err != nil {
		return f.err
	}
	f.launched = append(f.launched, sess)
	return nil
}

func serviceConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{AlertType: "kubernetes"},
		Settings: config.DefaultSettings(),
		ChainRegistry: config.NewChainRegistry(map[string]config.ChainConfig{
			"kubernetes-chain": {
				AlertTypes: []string{"kubernetes"},
				Stages: []config.StageConfig{
					{Name: "investigation", Agent: "KubernetesAgent"},
					{Name: "analysis", Agent: "KubernetesAgent"},
				},
			},
		}, "kubernetes"),
	}
}

func newTestService(store *memStore, runner *fakeRunner, runbooks fakeRunbooks, recorder *eventRecorder) *Service {
	return NewService(serviceConfig(), store, runner, runbooks, recorder, nil, "pod-1")
}

func TestSubmit_CreatesPendingSession(t *testing.T) {
	store := newMemStore()
	recorder := &eventRecorder{}
	svc := newTestService(store, &fakeRunner{}, fakeRunbooks{}, recorder)

	sess, duplicate, err := svc.Submit(context.Background(), SubmitInput{
		AlertType:  "kubernetes",
		AlertData:  map[string]interface{}{"message": "namespace stuck"},
		RunbookURL: "https://github.com/org/runbooks/blob/main/k8s.md",
		Author:     "oncall@example.com",
	})

	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Equal(t, session.StatusPending, sess.Status)
	assert.Equal(t, "kubernetes-chain", sess.ChainID)
	assert.NotEmpty(t, sess.ID)

	require.Equal(t, []string{events.EventTypeSessionCreated}, recorder.types())
	assert.Equal(t, string(session.StatusPending), recorder.events[0].Status)
}

func TestSubmit_DefaultAlertType(t *testing.T) {
	svc := newTestService(newMemStore(), &fakeRunner{}, fakeRunbooks{}, &eventRecorder{})

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertData: map[string]interface{}{"message": "something"},
	})

	require.NoError(t, err)
	assert.Equal(t, "kubernetes", sess.AlertType)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	svc := newTestService(newMemStore(), &fakeRunner{}, fakeRunbooks{}, &eventRecorder{})

	_, _, err := svc.Submit(context.Background(), SubmitInput{AlertType: "kubernetes"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, _, err = svc.Submit(context.Background(), SubmitInput{
		AlertType: "no-such-type-and-no-chain",
		AlertData: map[string]interface{}{"message": "x"},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "no-such-type-and-no-chain")
}

func TestSubmit_DuplicateReturnsOriginalSession(t *testing.T) {
	svc := newTestService(newMemStore(), &fakeRunner{}, fakeRunbooks{}, &eventRecorder{})
	input := SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "namespace stuck"},
	}

	first, duplicate, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	require.False(t, duplicate)

	second, duplicate, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Equal(t, first.ID, second.ID)
}

func TestProcess_CompletedSession(t *testing.T) {
	store := newMemStore()
	recorder := &eventRecorder{}
	runner := &fakeRunner{
		result: &chain.Result{
			Status:                session.StatusCompleted,
			FinalAnalysis:         "remove the stuck finalizer",
			FinalStageExecutionID: "exec-2",
			TimestampUs:           123456,
		},
		summary: "Finalizer removal required.",
	}
	svc := newTestService(store, runner, fakeRunbooks{content: "# Runbook"}, recorder)

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "stuck", "environment": "staging", "severity": "critical"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Process(context.Background(), sess))

	stored, err := store.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, stored.Status)
	assert.Equal(t, "# Runbook", stored.Runbook)

	require.NotNil(t, stored.FinalAnalysis)
	report := *stored.FinalAnalysis
	assert.True(t, strings.HasPrefix(report, "# Alert Analysis Report"), "got %q", report)
	assert.Contains(t, report, "**Alert Type:** kubernetes")
	assert.Contains(t, report, "**Processing Chain:** kubernetes-chain")
	assert.Contains(t, report, "**Environment:** staging")
	assert.Contains(t, report, "**Severity:** critical")
	assert.Contains(t, report, "remove the stuck finalizer")
	assert.Contains(t, report, "*Processed by kubernetes-chain in 2 stages*")

	require.NotNil(t, stored.FinalAnalysisSummary)
	assert.Equal(t, "Finalizer removal required.", *stored.FinalAnalysisSummary)

	assert.Equal(t, []string{
		events.EventTypeSessionCreated,
		events.EventTypeSessionStarted,
		events.EventTypeSessionCompleted,
	}, recorder.types())
}

func TestProcess_SummaryFailureIsFailOpen(t *testing.T) {
	store := newMemStore()
	runner := &fakeRunner{
		result:     &chain.Result{Status: session.StatusCompleted, FinalAnalysis: "done"},
		summaryErr: errors.New("llm unavailable"),
	}
	svc := newTestService(store, runner, fakeRunbooks{content: "# Runbook"}, &eventRecorder{})

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "stuck"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Process(context.Background(), sess))

	stored, _ := store.GetSession(context.Background(), sess.ID)
	assert.Equal(t, session.StatusCompleted, stored.Status)
	assert.Nil(t, stored.FinalAnalysisSummary)
}

func TestProcess_RunbookFailureFailsSession(t *testing.T) {
	store := newMemStore()
	recorder := &eventRecorder{}
	runner := &fakeRunner{}
	svc := newTestService(store, runner, fakeRunbooks{err: errors.New("404 not found")}, recorder)

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "stuck"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Process(context.Background(), sess))

	stored, _ := store.GetSession(context.Background(), sess.ID)
	assert.Equal(t, session.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "no runbook")

	require.NotNil(t, stored.FinalAnalysis)
	assert.True(t, strings.HasPrefix(*stored.FinalAnalysis, "# Alert Processing Error"))
	assert.Contains(t, *stored.FinalAnalysis, "## Troubleshooting")

	assert.Empty(t, runner.executed, "the chain must not run without a runbook")
	assert.Contains(t, recorder.types(), events.EventTypeSessionFailed)
}

func TestProcess_PausedSession(t *testing.T) {
	store := newMemStore()
	recorder := &eventRecorder{}
	runner := &fakeRunner{result: &chain.Result{Status: session.StatusPaused}}
	svc := newTestService(store, runner, fakeRunbooks{content: "# Runbook"}, recorder)

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "stuck"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Process(context.Background(), sess))

	stored, _ := store.GetSession(context.Background(), sess.ID)
	assert.Equal(t, session.StatusPaused, stored.Status)
	assert.Nil(t, stored.FinalAnalysis, "paused sessions carry no report")
	assert.Contains(t, recorder.types(), events.EventTypeSessionPaused)
}

func TestProcess_CancelledSession(t *testing.T) {
	store := newMemStore()
	recorder := &eventRecorder{}
	runner := &fakeRunner{result: &chain.Result{
		Status:       session.StatusCancelled,
		ErrorMessage: "Cancelled by user",
	}}
	svc := newTestService(store, runner, fakeRunbooks{content: "# Runbook"}, recorder)

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "stuck"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Process(context.Background(), sess))

	stored, _ := store.GetSession(context.Background(), sess.ID)
	assert.Equal(t, session.StatusCancelled, stored.Status)
	assert.Contains(t, recorder.types(), events.EventTypeSessionCancelled)
}

func TestResume_ClaimsAndLaunches(t *testing.T) {
	store := newMemStore()
	recorder := &eventRecorder{}
	svc := newTestService(store, &fakeRunner{}, fakeRunbooks{}, recorder)
	launcher := &fakeLauncher{}
	svc.SetLauncher(launcher)

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "stuck"},
	})
	require.NoError(t, err)
	_, err = store.UpdateSessionStatus(context.Background(), sess.ID, session.StatusPaused, "")
	require.NoError(t, err)

	claimed, err := svc.Resume(context.Background(), sess.ID)

	require.NoError(t, err)
	assert.Equal(t, session.StatusInProgress, claimed.Status)
	require.Len(t, launcher.launched, 1)
	assert.Equal(t, sess.ID, launcher.launched[0].ID)
	assert.Contains(t, recorder.types(), events.EventTypeSessionResumed)
}

func TestResume_RejectsNonPausedSession(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, &fakeRunner{}, fakeRunbooks{}, &eventRecorder{})
	svc.SetLauncher(&fakeLauncher{})

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "stuck"},
	})
	require.NoError(t, err)

	_, err = svc.Resume(context.Background(), sess.ID)
	assert.ErrorIs(t, err, history.ErrConflict)
}

func TestResume_LaunchFailureRevertsToPaused(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, &fakeRunner{}, fakeRunbooks{}, &eventRecorder{})
	svc.SetLauncher(&fakeLauncher{err: errors.New("at capacity")})

	sess, _, err := svc.Submit(context.Background(), SubmitInput{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "stuck"},
	})
	require.NoError(t, err)
	_, err = store.UpdateSessionStatus(context.Background(), sess.ID, session.StatusPaused, "")
	require.NoError(t, err)

	_, err = svc.Resume(context.Background(), sess.ID)

	require.Error(t, err)
	stored, _ := store.GetSession(context.Background(), sess.ID)
	assert.Equal(t, session.StatusPaused, stored.Status)
}
