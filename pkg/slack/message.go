package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

// maxBlockTextLength stays under Slack's 3000-character section block limit.
const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"timed_out": ":hourglass:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Analysis Complete",
	"failed":    "Analysis Failed",
	"timed_out": "Analysis Timed Out",
	"cancelled": "Analysis Cancelled",
}

func sessionURL(sessionID, dashboardURL string) string {
	return fmt.Sprintf("%s/sessions/%s", dashboardURL, sessionID)
}

func mdSection(text string) *goslack.SectionBlock {
	return goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
		nil, nil,
	)
}

// BuildStartedMessage renders the "processing started" notification.
func BuildStartedMessage(sessionID, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":arrows_counterclockwise: *Processing started* — this may take a few minutes.\n<%s|View in Dashboard>",
		sessionURL(sessionID, dashboardURL))
	return []goslack.Block{mdSection(text)}
}

// BuildTerminalMessage renders the terminal notification: a status header,
// the analysis content for completed sessions, and a dashboard link button.
func BuildTerminalMessage(input SessionCompletedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Analysis " + input.Status
	}
	header := fmt.Sprintf("%s *%s*", emoji, label)

	var blocks []goslack.Block
	if input.Status == "completed" {
		blocks = append(blocks, mdSection(header))
		content := input.ExecutiveSummary
		if content == "" {
			content = input.FinalAnalysis
		}
		if content != "" {
			blocks = append(blocks, mdSection(truncateForSlack(content)))
		}
	} else {
		if input.ErrorMessage != "" {
			header += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(input.ErrorMessage))
		}
		blocks = append(blocks, mdSection(header))
	}

	buttonText := "View Full Analysis"
	if input.Status != "completed" {
		buttonText = "View Details"
	}
	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
	btn.URL = sessionURL(input.SessionID, dashboardURL)

	return append(blocks, goslack.NewActionBlock("", btn))
}

// truncateForSlack bounds text to maxBlockTextLength characters without
// splitting multi-byte runes.
func truncateForSlack(text string) string {
	runes := []rune(text)
	if len(runes) <= maxBlockTextLength {
		return text
	}
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — view full analysis in dashboard)_"
}
