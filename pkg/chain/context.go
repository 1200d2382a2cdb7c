package chain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

// Context is the per-run scratchpad: the alert being processed plus the
// outputs of every stage executed so far, in chain order. Later stages see
// the accumulated outputs as formatted prompt context.
type Context struct {
	AlertType string
	AlertData string
	Runbook   string

	outputs []stageOutput
}

type stageOutput struct {
	executionID string
	stageName   string
	stageIndex  int
	result      *stage.Result
}

// NewContext builds the chain context from a claimed session.
func NewContext(sess *ent.Session) *Context {
	return &Context{
		AlertType: sess.AlertType,
		AlertData: formatAlertData(sess.AlertData),
		Runbook:   sess.Runbook,
	}
}

// AddStageOutput records one stage's result for consumption by later stages.
func (c *Context) AddStageOutput(stageIndex int, stageName, executionID string, result *stage.Result) {
	c.outputs = append(c.outputs, stageOutput{
		executionID: executionID,
		stageName:   stageName,
		stageIndex:  stageIndex,
		result:      result,
	})
}

// PreviousStageContext renders the accumulated stage outputs as prompt text
// with HTML comment boundaries. Empty before the first stage completes.
func (c *Context) PreviousStageContext() string {
	if len(c.outputs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<!-- STAGE_CONTEXT_START -->\n")
	for _, out := range c.outputs {
		fmt.Fprintf(&sb, "### Stage %d: %s\n\n", out.stageIndex+1, out.stageName)
		writeStageResult(&sb, out.result)
	}
	sb.WriteString("<!-- STAGE_CONTEXT_END -->")
	return sb.String()
}

func writeStageResult(sb *strings.Builder, result *stage.Result) {
	if result == nil {
		return
	}
	if result.Parallel == nil {
		if result.FinalText != "" {
			sb.WriteString(result.FinalText)
			sb.WriteString("\n\n")
		}
		return
	}

	meta := result.Parallel.Metadata
	fmt.Fprintf(sb, "Parallel group: %d/%d children succeeded.\n\n",
		meta.SuccessfulCount, meta.TotalCount)
	for _, child := range result.Parallel.Results {
		fmt.Fprintf(sb, "#### %s (%d of %d)\n\n", child.Agent, child.ParallelIndex, meta.TotalCount)
		switch {
		case child.FinalText != "":
			sb.WriteString(child.FinalText)
			sb.WriteString("\n\n")
		case child.ErrorMessage != "":
			fmt.Fprintf(sb, "Failed: %s\n\n", child.ErrorMessage)
		}
	}
}

// formatAlertData renders the schemaless alert payload for prompts. A
// payload with a single "message" string key is passed through as plain
// text; everything else is pretty-printed JSON.
func formatAlertData(data map[string]interface{}) string {
	if len(data) == 1 {
		if msg, ok := data["message"].(string); ok {
			return msg
		}
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(encoded)
}
