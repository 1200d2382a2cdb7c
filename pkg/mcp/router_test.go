package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToolName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double underscore to dot", "kubernetes-server__get_pods", "kubernetes-server.get_pods"},
		{"already canonical passthrough", "kubernetes-server.get_pods", "kubernetes-server.get_pods"},
		{"no separator passthrough", "get_pods", "get_pods"},
		{"dot wins over later double underscore", "server.tool__name", "server.tool__name"},
		{"only first double underscore replaced", "server__tool__extra", "server.tool__extra"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeToolName(tt.input))
		})
	}
}

func TestSplitToolName(t *testing.T) {
	t.Run("valid names", func(t *testing.T) {
		tests := []struct {
			input      string
			wantServer string
			wantTool   string
		}{
			{"kubernetes.get_pods", "kubernetes", "get_pods"},
			{"kubernetes-server.get-pods", "kubernetes-server", "get-pods"},
			{"server1.tool2", "server1", "tool2"},
			{"my_server.my_tool", "my_server", "my_tool"},
		}
		for _, tt := range tests {
			server, tool, err := SplitToolName(tt.input)
			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.wantServer, server)
			assert.Equal(t, tt.wantTool, tool)
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, input := range []string{
			"",
			"kubernetes_get_pods", // no dot
			"server.tool.extra",   // multiple dots
			".tool",
			"server.",
			".",
			"my server.my tool",
			"-server.tool", // segment must start with a word character
		} {
			server, tool, err := SplitToolName(input)
			assert.Error(t, err, input)
			assert.Empty(t, server)
			assert.Empty(t, tool)
		}
	})
}
