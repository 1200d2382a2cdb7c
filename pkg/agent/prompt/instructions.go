package prompt

import (
	"strings"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
)

// generalInstructions is the base SRE instruction block shared by all agents.
const generalInstructions = `## General SRE Agent Instructions

You are an expert Site Reliability Engineer (SRE) with deep knowledge of:
- Kubernetes and container orchestration
- Cloud infrastructure and services
- Incident response and troubleshooting
- System monitoring and alerting
- DevOps best practices

Analyze alerts thoroughly and provide actionable insights based on:
1. Alert information and context
2. Associated runbook procedures
3. Real-time system data from available tools

Always be specific, reference actual data, and provide clear next steps.`

// finalAnalysisInstructions replaces the general block for tool-less
// final-analysis stages: no tools are offered, the model works from the
// accumulated investigation data.
const finalAnalysisInstructions = `## Final Analysis Instructions

You are an expert Site Reliability Engineer (SRE) producing the final analysis
of an alert investigation. All data gathering has already happened in earlier
stages; do not request tools or further information.

Based on the alert, the runbook, and the investigation results from previous
stages, provide:
1. Root cause analysis
2. Impact assessment
3. Specific remediation steps for human operators
4. Prevention recommendations

Be specific, reference the gathered data, and provide clear next steps.`

// ComposeInstructions builds the layered instruction block for an
// investigation stage: general instructions, then per-MCP-server
// instructions, then agent-specific custom instructions.
func ComposeInstructions(execCtx *agent.ExecutionContext, registry *config.MCPServerRegistry) string {
	var sb strings.Builder
	sb.WriteString(generalInstructions)

	appendMCPInstructions(&sb, execCtx, registry)

	if execCtx.Config != nil {
		if custom := strings.TrimSpace(execCtx.Config.CustomInstructions); custom != "" {
			sb.WriteString("\n\n## Agent-Specific Instructions\n")
			sb.WriteString(custom)
		}
	}

	return sb.String()
}

// appendMCPInstructions adds the instruction block of each assigned MCP
// server, in assignment order. Servers without instructions are skipped.
func appendMCPInstructions(sb *strings.Builder, execCtx *agent.ExecutionContext, registry *config.MCPServerRegistry) {
	if registry == nil || execCtx.Config == nil {
		return
	}
	for _, serverID := range execCtx.Config.MCPServers {
		cfg, err := registry.Get(serverID)
		if err != nil {
			continue
		}
		instructions := strings.TrimSpace(cfg.Instructions)
		if instructions == "" {
			continue
		}
		sb.WriteString("\n\n## ")
		sb.WriteString(serverID)
		sb.WriteString(" Server Instructions\n")
		sb.WriteString(instructions)
	}
}
