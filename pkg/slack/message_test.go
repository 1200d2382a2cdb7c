package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessage(t *testing.T) {
	blocks := BuildStartedMessage("session-123", "https://tarsy.example.com")
	require.Len(t, blocks, 1)

	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":arrows_counterclockwise:")
	assert.Contains(t, section.Text.Text, "Processing started")
	assert.Contains(t, section.Text.Text, "https://tarsy.example.com/sessions/session-123")
}

func TestBuildTerminalMessage_Completed(t *testing.T) {
	blocks := BuildTerminalMessage(SessionCompletedInput{
		SessionID:        "sess-1",
		Status:           "completed",
		ExecutiveSummary: "The pod crashed due to OOM.",
	}, "https://dash.example.com")
	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Analysis Complete")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, content.Text.Text, "The pod crashed due to OOM.")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Full Analysis", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/sessions/sess-1")
}

func TestBuildTerminalMessage_CompletedContentFallback(t *testing.T) {
	t.Run("final analysis when no summary", func(t *testing.T) {
		blocks := BuildTerminalMessage(SessionCompletedInput{
			SessionID:     "sess-2",
			Status:        "completed",
			FinalAnalysis: "Fallback analysis content.",
		}, "https://dash.example.com")
		require.Len(t, blocks, 3)
		assert.Contains(t, blocks[1].(*goslack.SectionBlock).Text.Text, "Fallback analysis content.")
	})

	t.Run("no content at all", func(t *testing.T) {
		blocks := BuildTerminalMessage(SessionCompletedInput{
			SessionID: "sess-3",
			Status:    "completed",
		}, "https://dash.example.com")
		require.Len(t, blocks, 2)
		assert.Contains(t, blocks[0].(*goslack.SectionBlock).Text.Text, "Analysis Complete")
	})
}

func TestBuildTerminalMessage_Failed(t *testing.T) {
	blocks := BuildTerminalMessage(SessionCompletedInput{
		SessionID:    "sess-4",
		Status:       "failed",
		ErrorMessage: "timeout waiting for LLM",
	}, "https://dash.example.com")
	require.Len(t, blocks, 2)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Analysis Failed")
	assert.Contains(t, header.Text.Text, "timeout waiting for LLM")

	btn := blocks[1].(*goslack.ActionBlock).Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Details", btn.Text.Text)
}

func TestBuildTerminalMessage_StatusHeaders(t *testing.T) {
	for status, want := range map[string][2]string{
		"timed_out": {":hourglass:", "Analysis Timed Out"},
		"cancelled": {":no_entry_sign:", "Analysis Cancelled"},
	} {
		blocks := BuildTerminalMessage(SessionCompletedInput{SessionID: "s", Status: status}, "https://d.example.com")
		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, want[0])
		assert.Contains(t, header.Text.Text, want[1])
	}
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		result := truncateForSlack(strings.Repeat("a", maxBlockTextLength+100))
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), maxBlockTextLength+100)
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		result := truncateForSlack(strings.Repeat("🔥", maxBlockTextLength+10))
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result))
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
