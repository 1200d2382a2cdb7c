package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tarsy-ai/tarsy/pkg/agent"
)

// FormatToolDescriptions renders the available tools as a numbered list with
// parameter details extracted from each tool's JSON Schema.
func FormatToolDescriptions(tools []agent.ToolDefinition) string {
	if len(tools) == 0 {
		return "## Available Tools\nNo tools are available.\n"
	}

	var sb strings.Builder
	sb.WriteString("## Available Tools\n\n")
	for i, tool := range tools {
		fmt.Fprintf(&sb, "%d. **%s**", i+1, tool.Name)
		if tool.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(tool.Description)
		}
		sb.WriteString("\n")
		if params := extractParameters(tool.ParametersSchema); params != "" {
			sb.WriteString(params)
		}
	}
	return sb.String()
}

// extractParameters renders the properties of a JSON Schema object as an
// indented parameter list. Returns "" for missing or non-object schemas.
func extractParameters(schemaJSON string) string {
	if schemaJSON == "" {
		return ""
	}

	var schema struct {
		Properties map[string]struct {
			Type        string `json:"type"`
			Description string `json:"description"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	if err := json.Unmarshal([]byte(schemaJSON), &schema); err != nil || len(schema.Properties) == 0 {
		return ""
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	// Sorted for deterministic prompt output.
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		prop := schema.Properties[name]
		sb.WriteString("   - `")
		sb.WriteString(name)
		sb.WriteString("`")
		if prop.Type != "" {
			sb.WriteString(" (")
			sb.WriteString(prop.Type)
			if required[name] {
				sb.WriteString(", required")
			}
			sb.WriteString(")")
		} else if required[name] {
			sb.WriteString(" (required)")
		}
		if prop.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(prop.Description)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
