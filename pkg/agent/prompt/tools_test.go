package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarsy-ai/tarsy/pkg/agent"
)

func TestFormatToolDescriptions(t *testing.T) {
	tools := []agent.ToolDefinition{
		{
			Name:        "kubernetes.get_pods",
			Description: "List pods in a namespace",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"namespace": {"type": "string", "description": "Target namespace"},
					"label_selector": {"type": "string"}
				},
				"required": ["namespace"]
			}`,
		},
		{
			Name:        "kubernetes.get_events",
			Description: "List recent events",
		},
	}

	out := FormatToolDescriptions(tools)

	assert.Contains(t, out, "## Available Tools")
	assert.Contains(t, out, "1. **kubernetes.get_pods**: List pods in a namespace")
	assert.Contains(t, out, "2. **kubernetes.get_events**: List recent events")
	assert.Contains(t, out, "`namespace` (string, required): Target namespace")
	assert.Contains(t, out, "`label_selector` (string)")

	// Parameters are listed in sorted order.
	assert.Less(t, strings.Index(out, "label_selector"), strings.Index(out, "`namespace`"))
}

func TestFormatToolDescriptions_Empty(t *testing.T) {
	out := FormatToolDescriptions(nil)
	assert.Contains(t, out, "No tools are available.")
}

func TestExtractParameters(t *testing.T) {
	t.Run("invalid schema", func(t *testing.T) {
		assert.Empty(t, extractParameters("{not json"))
	})

	t.Run("empty schema", func(t *testing.T) {
		assert.Empty(t, extractParameters(""))
	})

	t.Run("no properties", func(t *testing.T) {
		assert.Empty(t, extractParameters(`{"type":"object"}`))
	})

	t.Run("required without type", func(t *testing.T) {
		out := extractParameters(`{"properties":{"name":{}},"required":["name"]}`)
		assert.Contains(t, out, "`name` (required)")
	})
}
