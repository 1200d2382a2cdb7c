// Package slack posts session lifecycle notifications to a Slack channel,
// threading onto the originating alert message when a fingerprint is known.
package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the resolved parameters for a notification service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// SessionStartedInput describes a session start notification.
type SessionStartedInput struct {
	SessionID               string
	AlertType               string
	SlackMessageFingerprint string
}

// SessionCompletedInput describes a terminal session notification.
type SessionCompletedInput struct {
	SessionID               string
	AlertType               string
	Status                  string // completed, failed, timed_out, cancelled
	ExecutiveSummary        string
	FinalAnalysis           string
	ErrorMessage            string
	SlackMessageFingerprint string
	ThreadTS                string // carried over from the start notification
}

// Service delivers notifications. A nil *Service is valid and turns every
// method into a no-op, so callers never branch on "Slack enabled".
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService builds the notification service, or nil when token or channel
// is missing (notifications disabled).
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return NewServiceWithClient(NewClient(cfg.Token, cfg.Channel), cfg.DashboardURL)
}

// NewServiceWithClient wraps a pre-built client, for tests against a mock
// Slack API.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifySessionStarted posts a "processing started" message, but only for
// Slack-originated alerts (those carrying a fingerprint). Returns the
// resolved thread timestamp so the terminal notification can reuse it.
// Fail-open: delivery errors are logged, never returned.
func (s *Service) NotifySessionStarted(ctx context.Context, input SessionStartedInput) string {
	if s == nil || input.SlackMessageFingerprint == "" {
		return ""
	}

	threadTS, err := s.client.FindMessageByFingerprint(ctx, input.SlackMessageFingerprint)
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for fingerprint",
			"session_id", input.SessionID,
			"fingerprint", input.SlackMessageFingerprint,
			"error", err)
	}

	blocks := BuildStartedMessage(input.SessionID, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack start notification",
			"session_id", input.SessionID,
			"error", err)
	}
	return threadTS
}

// NotifySessionCompleted posts the terminal status message. Fail-open.
func (s *Service) NotifySessionCompleted(ctx context.Context, input SessionCompletedInput) {
	if s == nil {
		return
	}

	threadTS := input.ThreadTS
	if threadTS == "" && input.SlackMessageFingerprint != "" {
		var err error
		threadTS, err = s.client.FindMessageByFingerprint(ctx, input.SlackMessageFingerprint)
		if err != nil {
			s.logger.Warn("Failed to find Slack thread for fingerprint",
				"session_id", input.SessionID,
				"fingerprint", input.SlackMessageFingerprint,
				"error", err)
		}
	}

	blocks := BuildTerminalMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"session_id", input.SessionID,
			"status", input.Status,
			"error", err)
	}
}
