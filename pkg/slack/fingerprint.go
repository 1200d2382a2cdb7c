package slack

import (
	"regexp"
	"strings"

	goslack "github.com/slack-go/slack"
)

var wsRun = regexp.MustCompile(`\s+`)

// normalizeText lowercases and collapses whitespace so fingerprint matching
// survives Slack's formatting.
func normalizeText(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(strings.ToLower(s), " "))
}

// collectMessageText flattens a message's own text plus attachment text and
// fallbacks into one searchable string.
func collectMessageText(msg goslack.Message) string {
	parts := make([]string, 0, 1+2*len(msg.Attachments))
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	return strings.Join(parts, " ")
}
