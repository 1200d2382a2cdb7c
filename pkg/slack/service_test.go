package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_NilReceiverIsNoOp(t *testing.T) {
	var s *Service

	result := s.NotifySessionStarted(context.Background(), SessionStartedInput{
		SessionID:               "sess-1",
		SlackMessageFingerprint: "test fingerprint",
	})
	assert.Empty(t, result)

	// Must not panic.
	s.NotifySessionCompleted(context.Background(), SessionCompletedInput{
		SessionID: "sess-1",
		Status:    "completed",
	})
}

func TestNewService(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{Token: "", Channel: "C123"}))
	assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-test", Channel: ""}))
	assert.NotNil(t, NewService(ServiceConfig{
		Token:        "xoxb-test",
		Channel:      "C123",
		DashboardURL: "https://example.com",
	}))
}

func TestService_NotifySessionStarted_SkipsWithoutFingerprint(t *testing.T) {
	svc := NewService(ServiceConfig{
		Token:        "xoxb-test",
		Channel:      "C123",
		DashboardURL: "https://example.com",
	})

	result := svc.NotifySessionStarted(context.Background(), SessionStartedInput{
		SessionID:               "sess-1",
		SlackMessageFingerprint: "",
	})
	assert.Empty(t, result)
}
