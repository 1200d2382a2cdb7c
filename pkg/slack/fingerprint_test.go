package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	cases := map[string]string{
		"Pod CRASHED in namespace":              "pod crashed in namespace",
		"pod   crashed\t\tin\n\nnamespace":      "pod crashed in namespace",
		"  hello  ":                             "hello",
		"":                                      "",
		"  ALERT:   Pod   nginx-abc   OOMKilled  ": "alert: pod nginx-abc oomkilled",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeText(in), "input %q", in)
	}
}

func TestCollectMessageText(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		msg := goslack.Message{Msg: goslack.Msg{Text: "hello world"}}
		assert.Equal(t, "hello world", collectMessageText(msg))
	})

	t.Run("attachment text and fallback included", func(t *testing.T) {
		msg := goslack.Message{Msg: goslack.Msg{
			Text: "alert",
			Attachments: []goslack.Attachment{
				{Text: "pod crashed", Fallback: "pod crashed fallback"},
			},
		}}
		assert.Equal(t, "alert pod crashed pod crashed fallback", collectMessageText(msg))
	})

	t.Run("attachment only", func(t *testing.T) {
		msg := goslack.Message{Msg: goslack.Msg{
			Attachments: []goslack.Attachment{{Text: "att text", Fallback: "att fallback"}},
		}}
		assert.Equal(t, "att text att fallback", collectMessageText(msg))
	})

	t.Run("empty message", func(t *testing.T) {
		assert.Equal(t, "", collectMessageText(goslack.Message{}))
	})
}
