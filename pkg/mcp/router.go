package mcp

import (
	"fmt"
	"regexp"
	"strings"
)

// Canonical tool names are "server.tool". Server and tool segments start
// with a word character and may contain word characters and hyphens.
var toolNamePattern = regexp.MustCompile(`^([\w][\w-]*)\.([\w][\w-]*)$`)

// NormalizeToolName maps controller-specific tool name encodings onto the
// canonical "server.tool" form. Native tool calling uses "server__tool"
// because Gemini function names cannot contain dots; ReAct text already
// produces the canonical form.
func NormalizeToolName(name string) string {
	if strings.Contains(name, "__") && !strings.Contains(name, ".") {
		// First double underscore is the server/tool boundary; later ones
		// belong to the tool name itself.
		return strings.Replace(name, "__", ".", 1)
	}
	return name
}

// SplitToolName splits a canonical "server.tool" name into its server and
// tool segments, rejecting anything that doesn't match the format.
func SplitToolName(name string) (serverID, toolName string, err error) {
	m := toolNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", "", fmt.Errorf(
			"invalid tool name %q: must be in 'server.tool' format "+
				"(e.g., 'kubernetes-server.get_pods')", name)
	}
	return m[1], m[2], nil
}
