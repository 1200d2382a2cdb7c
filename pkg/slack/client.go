package slack

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"
)

// How far back FindMessageByFingerprint searches channel history.
const (
	historyWindow = 24 * time.Hour
	historyLimit  = 50
)

// Client wraps the slack-go SDK for one channel.
type Client struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

func NewClient(token, channelID string) *Client {
	return newClient(goslack.New(token), channelID)
}

// NewClientWithAPIURL targets a custom API base URL, for tests against a
// mock Slack server.
func NewClientWithAPIURL(token, channelID, apiURL string) *Client {
	return newClient(goslack.New(token, goslack.OptionAPIURL(apiURL)), channelID)
}

func newClient(api *goslack.Client, channelID string) *Client {
	return &Client{
		api:       api,
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// PostMessage sends Block Kit blocks to the channel, threaded under
// threadTS when it is non-empty.
func (c *Client) PostMessage(ctx context.Context, blocks []goslack.Block, threadTS string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := []goslack.MsgOption{goslack.MsgOptionBlocks(blocks...)}
	if threadTS != "" {
		opts = append(opts, goslack.MsgOptionTS(threadTS))
	}

	if _, _, err := c.api.PostMessageContext(ctx, c.channelID, opts...); err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// FindMessageByFingerprint scans recent channel history for a message whose
// text contains the fingerprint and returns its timestamp for threading.
// Empty string means no match.
func (c *Client) FindMessageByFingerprint(ctx context.Context, fingerprint string) (string, error) {
	history, err := c.api.GetConversationHistoryContext(ctx, &goslack.GetConversationHistoryParameters{
		ChannelID: c.channelID,
		Oldest:    fmt.Sprintf("%d", time.Now().Add(-historyWindow).Unix()),
		Limit:     historyLimit,
	})
	if err != nil {
		return "", fmt.Errorf("conversations.history failed: %w", err)
	}

	needle := normalizeText(fingerprint)
	for _, msg := range history.Messages {
		if strings.Contains(normalizeText(collectMessageText(msg)), needle) {
			return msg.Timestamp, nil
		}
	}
	return "", nil
}
