package alert

import (
	"fmt"
	"strings"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/chain"
	"github.com/tarsy-ai/tarsy/pkg/config"
)

// Defaults applied when the alert payload carries no environment or
// severity of its own.
const (
	defaultEnvironment = "production"
	defaultSeverity    = "warning"
)

// analysisReport renders the final Markdown report for a completed session.
func analysisReport(cfg *config.Config, sess *ent.Session, result *chain.Result) string {
	stageCount := 0
	if chainCfg, err := cfg.ChainRegistry.Get(sess.ChainID); err == nil {
		stageCount = len(chainCfg.Stages)
	}

	var sb strings.Builder
	sb.WriteString("# Alert Analysis Report\n\n")
	fmt.Fprintf(&sb, "**Alert Type:** %s\n", sess.AlertType)
	fmt.Fprintf(&sb, "**Processing Chain:** %s\n", sess.ChainID)
	fmt.Fprintf(&sb, "**Environment:** %s\n", alertField(sess, "environment", defaultEnvironment))
	fmt.Fprintf(&sb, "**Severity:** %s\n", alertField(sess, "severity", defaultSeverity))
	fmt.Fprintf(&sb, "**Timestamp:** %d\n\n", result.TimestampUs)
	sb.WriteString("## Analysis\n\n")
	sb.WriteString(result.FinalAnalysis)
	sb.WriteString("\n\n---\n")
	fmt.Fprintf(&sb, "*Processed by %s in %d stages*\n", sess.ChainID, stageCount)
	return sb.String()
}

// errorReport renders the Markdown report for a failed session.
func errorReport(sess *ent.Session, message string) string {
	var sb strings.Builder
	sb.WriteString("# Alert Processing Error\n\n")
	fmt.Fprintf(&sb, "**Alert Type:** %s\n", sess.AlertType)
	fmt.Fprintf(&sb, "**Environment:** %s\n", alertField(sess, "environment", defaultEnvironment))
	fmt.Fprintf(&sb, "**Error:** %s\n\n", message)
	sb.WriteString("## Troubleshooting\n")
	sb.WriteString("1. Check the session's stage executions for the failing stage and its error message.\n")
	sb.WriteString("2. Verify the configured MCP servers are reachable (see /system/warnings).\n")
	sb.WriteString("3. Verify the LLM provider credentials and endpoint.\n")
	sb.WriteString("4. Resubmit the alert once the underlying issue is addressed.\n")
	return sb.String()
}

// alertField reads a string field from the alert payload with a fallback.
func alertField(sess *ent.Session, key, fallback string) string {
	if value, ok := sess.AlertData[key].(string); ok && value != "" {
		return value
	}
	return fallback
}
