// Package alert orchestrates alert processing: validation, chain selection,
// session creation, runbook download, delegation to the chain executor, and
// the terminal report with its executive summary.
package alert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/chain"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/masking"
)

// ValidationError is a field-specific submission error, rendered by the API
// layer as a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsValidationError reports whether err is a submission validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SubmitInput is the domain-level alert submission, transformed from the
// HTTP request by the handler.
type SubmitInput struct {
	AlertType               string
	AlertData               map[string]interface{}
	RunbookURL              string
	Author                  string
	SlackMessageFingerprint string
}

// SessionStore is the slice of the history repository the service uses.
type SessionStore interface {
	CreateSession(ctx context.Context, req *history.CreateSessionRequest) (*ent.Session, error)
	GetSession(ctx context.Context, sessionID string) (*ent.Session, error)
	UpdateSessionStatus(ctx context.Context, sessionID string, status session.Status, errorMessage string) (*ent.Session, error)
	ClaimPausedSession(ctx context.Context, sessionID, podID string) (*ent.Session, error)
	SetSessionRunbook(ctx context.Context, sessionID, runbook string) error
	SetSessionAnalysis(ctx context.Context, sessionID, analysis string) error
	SetSessionAnalysisSummary(ctx context.Context, sessionID, summary string) error
}

// ChainRunner executes a session's chain. Implemented by chain.Executor.
type ChainRunner interface {
	Execute(ctx context.Context, sess *ent.Session) (*chain.Result, error)
	GenerateExecutiveSummary(ctx context.Context, sessionID, stageExecutionID, finalAnalysis string) (string, error)
}

// RunbookResolver fetches runbook content. Implemented by runbook.Service.
type RunbookResolver interface {
	Resolve(ctx context.Context, alertRunbookURL string) (string, error)
}

// SessionEventSink publishes session lifecycle events. Implemented by
// events.EventPublisher.
type SessionEventSink interface {
	PublishSessionEvent(ctx context.Context, payload events.SessionEventPayload) error
}

// SessionLauncher runs a claimed session on a tracked worker task.
// Implemented by queue.Pool.
type SessionLauncher interface {
	Launch(sess *ent.Session) error
}

// Service is the alert orchestrator.
type Service struct {
	cfg       *config.Config
	repo      SessionStore
	executor  ChainRunner
	runbooks  RunbookResolver
	publisher SessionEventSink
	masker    *masking.MaskingService
	launcher  SessionLauncher
	dedup     *dedupCache
	podID     string
}

// NewService creates the alert service. launcher may be set later via
// SetLauncher to break the construction cycle with the worker pool.
func NewService(
	cfg *config.Config,
	repo SessionStore,
	executor ChainRunner,
	runbooks RunbookResolver,
	publisher SessionEventSink,
	masker *masking.MaskingService,
	podID string,
) *Service {
	return &Service{
		cfg:       cfg,
		repo:      repo,
		executor:  executor,
		runbooks:  runbooks,
		publisher: publisher,
		masker:    masker,
		dedup:     newDedupCache(dedupTTL, dedupMaxEntries),
		podID:     podID,
	}
}

// SetLauncher wires the worker pool used for resume launches.
func (s *Service) SetLauncher(launcher SessionLauncher) {
	s.launcher = launcher
}

// Submit validates an alert and creates its pending session. A resubmission
// of an identical alert within the dedup window returns the original
// session with duplicate=true instead of creating a new one.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (sess *ent.Session, duplicate bool, err error) {
	if len(input.AlertData) == 0 {
		return nil, false, &ValidationError{Field: "alert_data", Message: "alert data is required"}
	}

	alertType := input.AlertType
	if alertType == "" {
		alertType = s.cfg.Defaults.AlertType
	}
	if alertType == "" {
		return nil, false, &ValidationError{Field: "alert_type", Message: "alert type is required"}
	}

	chainID, chainCfg, err := s.cfg.ChainRegistry.ResolveAlertType(alertType)
	if err != nil {
		return nil, false, &ValidationError{
			Field:   "alert_type",
			Message: fmt.Sprintf("no chain found for alert type %q", alertType),
		}
	}

	key := fingerprint(alertType, input.AlertData)
	if existingID, ok := s.dedup.Get(key); ok {
		existing, getErr := s.repo.GetSession(ctx, existingID)
		if getErr == nil {
			slog.Info("duplicate alert submission",
				"alert_type", alertType,
				"session_id", existingID)
			return existing, true, nil
		}
	}

	data := s.maskAlertData(input.AlertData)

	sess, err = s.repo.CreateSession(ctx, &history.CreateSessionRequest{
		SessionID:               uuid.NewString(),
		AlertType:               alertType,
		AlertData:               data,
		RunbookURL:              input.RunbookURL,
		ChainID:                 chainID,
		ChainConfig:             chainConfigSnapshot(chainCfg),
		Author:                  input.Author,
		SlackMessageFingerprint: input.SlackMessageFingerprint,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create session: %w", err)
	}
	s.dedup.Put(key, sess.ID)

	s.publishSessionEvent(ctx, events.EventTypeSessionCreated, sess, "")

	slog.Info("alert accepted",
		"session_id", sess.ID,
		"alert_type", alertType,
		"chain_id", chainID)
	return sess, false, nil
}

// Process runs a claimed session end to end: runbook download, chain
// execution, and terminal bookkeeping. The session is already in_progress;
// heartbeating and registry bookkeeping belong to the calling worker.
func (s *Service) Process(ctx context.Context, sess *ent.Session) error {
	log := slog.With("session_id", sess.ID, "chain_id", sess.ChainID)
	s.publishSessionEvent(ctx, events.EventTypeSessionStarted, sess, "")

	runbook, err := s.runbooks.Resolve(ctx, sess.RunbookURL)
	if err != nil {
		log.Error("runbook download failed", "runbook_url", sess.RunbookURL, "error", err)
		return s.failSession(ctx, sess, fmt.Sprintf("no runbook: %v", err))
	}
	if runbook != "" {
		if err := s.repo.SetSessionRunbook(ctx, sess.ID, runbook); err != nil {
			return s.failSession(ctx, sess, fmt.Sprintf("failed to store runbook: %v", err))
		}
		sess.Runbook = runbook
	}

	result, err := s.executor.Execute(ctx, sess)
	if err != nil {
		log.Error("chain execution failed before any stage", "error", err)
		return s.failSession(ctx, sess, err.Error())
	}

	switch result.Status {
	case session.StatusCompleted:
		return s.completeSession(ctx, sess, result)
	case session.StatusPaused:
		if _, err := s.repo.UpdateSessionStatus(ctx, sess.ID, session.StatusPaused, ""); err != nil {
			return err
		}
		s.publishSessionEvent(ctx, events.EventTypeSessionPaused, sess, "")
		log.Info("session paused")
		return nil
	case session.StatusCancelled:
		if _, err := s.repo.UpdateSessionStatus(ctx, sess.ID, session.StatusCancelled, result.ErrorMessage); err != nil {
			return err
		}
		s.publishSessionEvent(ctx, events.EventTypeSessionCancelled, sess, result.ErrorMessage)
		log.Info("session cancelled")
		return nil
	default:
		return s.failSession(ctx, sess, result.ErrorMessage)
	}
}

// Resume claims a paused session for this pod and relaunches it on the
// worker pool.
func (s *Service) Resume(ctx context.Context, sessionID string) (*ent.Session, error) {
	if s.launcher == nil {
		return nil, fmt.Errorf("resume unavailable: no session launcher wired")
	}

	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != session.StatusPaused {
		return nil, fmt.Errorf("%w: session %s is %s, not paused", history.ErrConflict, sessionID, sess.Status)
	}

	claimed, err := s.repo.ClaimPausedSession(ctx, sessionID, s.podID)
	if err != nil {
		return nil, err
	}
	s.publishSessionEvent(ctx, events.EventTypeSessionResumed, claimed, "")

	if err := s.launcher.Launch(claimed); err != nil {
		// Put the session back so another pod (or a later retry) can
		// pick it up.
		if _, revertErr := s.repo.UpdateSessionStatus(ctx, sessionID, session.StatusPaused, ""); revertErr != nil {
			slog.Error("failed to revert session to paused after launch failure",
				"session_id", sessionID, "error", revertErr)
		}
		return nil, err
	}

	slog.Info("session resumed", "session_id", sessionID, "pod_id", s.podID)
	return claimed, nil
}

// completeSession persists the analysis report, the executive summary, and
// the terminal status for a successful chain.
func (s *Service) completeSession(ctx context.Context, sess *ent.Session, result *chain.Result) error {
	report := analysisReport(s.cfg, sess, result)
	if err := s.repo.SetSessionAnalysis(ctx, sess.ID, report); err != nil {
		return s.failSession(ctx, sess, fmt.Sprintf("failed to store analysis: %v", err))
	}

	// Summary generation is fail-open: a completed investigation is worth
	// more than a missing one-liner.
	summary, err := s.executor.GenerateExecutiveSummary(ctx, sess.ID, result.FinalStageExecutionID, result.FinalAnalysis)
	if err != nil {
		slog.Warn("executive summary generation failed", "session_id", sess.ID, "error", err)
	} else if summary != "" {
		if err := s.repo.SetSessionAnalysisSummary(ctx, sess.ID, summary); err != nil {
			slog.Warn("failed to store executive summary", "session_id", sess.ID, "error", err)
		}
	}

	if _, err := s.repo.UpdateSessionStatus(ctx, sess.ID, session.StatusCompleted, ""); err != nil {
		return err
	}
	s.publishSessionEvent(ctx, events.EventTypeSessionCompleted, sess, "")
	slog.Info("session completed", "session_id", sess.ID)
	return nil
}

// failSession records the error report and terminal failed status.
func (s *Service) failSession(ctx context.Context, sess *ent.Session, message string) error {
	if err := s.repo.SetSessionAnalysis(ctx, sess.ID, errorReport(sess, message)); err != nil {
		slog.Error("failed to store error report", "session_id", sess.ID, "error", err)
	}
	if _, err := s.repo.UpdateSessionStatus(ctx, sess.ID, session.StatusFailed, message); err != nil {
		return err
	}
	s.publishSessionEvent(ctx, events.EventTypeSessionFailed, sess, message)
	slog.Info("session failed", "session_id", sess.ID, "error", message)
	return nil
}

// publishSessionEvent emits one session lifecycle event. Best effort: the
// session row is the source of truth and the catchup path covers missed
// deliveries of everything persisted.
func (s *Service) publishSessionEvent(ctx context.Context, eventType string, sess *ent.Session, errorMessage string) {
	payload := events.SessionEventPayload{
		Type:         eventType,
		SessionID:    sess.ID,
		AlertType:    sess.AlertType,
		ChainID:      sess.ChainID,
		Status:       statusForEvent(eventType, sess),
		ErrorMessage: errorMessage,
		TimestampUs:  history.NowMicros(),
	}
	if err := s.publisher.PublishSessionEvent(ctx, payload); err != nil {
		slog.Warn("failed to publish session event",
			"session_id", sess.ID,
			"event_type", eventType,
			"error", err)
	}
}

// statusForEvent maps the lifecycle event to the session status it reports.
func statusForEvent(eventType string, sess *ent.Session) string {
	switch eventType {
	case events.EventTypeSessionCreated:
		return string(session.StatusPending)
	case events.EventTypeSessionStarted, events.EventTypeSessionResumed:
		return string(session.StatusInProgress)
	case events.EventTypeSessionCompleted:
		return string(session.StatusCompleted)
	case events.EventTypeSessionFailed:
		return string(session.StatusFailed)
	case events.EventTypeSessionPaused:
		return string(session.StatusPaused)
	case events.EventTypeSessionCancelled:
		return string(session.StatusCancelled)
	default:
		return string(sess.Status)
	}
}

// maskAlertData applies the system-wide alert masking patterns to the raw
// payload before it is stored. The payload round-trips through JSON so the
// patterns see the same text a leak would.
func (s *Service) maskAlertData(data map[string]interface{}) map[string]interface{} {
	if s.masker == nil {
		return data
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return data
	}
	masked := s.masker.MaskAlertData(string(encoded))
	if masked == string(encoded) {
		return data
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(masked), &out); err != nil {
		// Masking mangled the JSON structure; keep the masked text rather
		// than the plaintext.
		return map[string]interface{}{"message": masked}
	}
	return out
}

// chainConfigSnapshot serializes the resolved chain definition onto the
// session so the record stays meaningful across config changes.
func chainConfigSnapshot(chainCfg config.ChainConfig) map[string]interface{} {
	encoded, err := json.Marshal(chainCfg)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil
	}
	return out
}
