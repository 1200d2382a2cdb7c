package config

import "sync"

// BuiltinConfig holds the built-in agents, MCP servers, LLM providers, and
// chains the service ships with. User YAML overrides entries by name.
type BuiltinConfig struct {
	Agents           map[string]AgentConfig
	MCPServers       map[string]MCPServerConfig
	LLMProviders     map[string]LLMProviderConfig
	ChainDefinitions map[string]ChainConfig
	DefaultAlertType string
	DefaultRunbook   string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration.
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(func() {
		builtinConfig = &BuiltinConfig{
			Agents:           builtinAgents(),
			MCPServers:       builtinMCPServers(),
			LLMProviders:     builtinLLMProviders(),
			ChainDefinitions: builtinChains(),
			DefaultAlertType: "kubernetes",
			DefaultRunbook:   defaultRunbookContent,
		}
	})
	return builtinConfig
}

func builtinAgents() map[string]AgentConfig {
	return map[string]AgentConfig{
		"KubernetesAgent": {
			Description:       "Kubernetes-specialized agent using the ReAct pattern",
			IterationStrategy: IterationStrategyReact,
			MCPServers:        []string{"kubernetes-server"},
		},
		"FinalAnalysisAgent": {
			Description:       "Formats the investigation into a final analysis",
			IterationStrategy: IterationStrategyReactFinalAnalysis,
			MCPServers:        []string{"kubernetes-server"},
		},
	}
}

func builtinMCPServers() map[string]MCPServerConfig {
	return map[string]MCPServerConfig{
		"kubernetes-server": {
			Transport: TransportConfig{
				Type:    TransportTypeStdio,
				Command: "npx",
				Args: []string{
					"-y",
					"kubernetes-mcp-server@0.0.54",
					"--read-only",
					"--disable-destructive",
					"--kubeconfig",
					"{{.KUBECONFIG}}",
				},
			},
			Instructions: `For Kubernetes operations:
- Always prefer namespaced queries when possible
- Cluster-scoped resources (Namespace, Node, ClusterRole) take no namespace parameter
- Namespace-scoped resources (Pod, Deployment, Service, ConfigMap) require one`,
			DataMasking: &MaskingConfig{
				Enabled:       true,
				PatternGroups: []string{"kubernetes"},
				Patterns:      []string{"certificate", "token"},
			},
		},
	}
}

func builtinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"google-default": {
			Type:      LLMProviderTypeGoogle,
			Model:     "gemini-2.5-pro",
			APIKeyEnv: "GOOGLE_API_KEY",
		},
		"openai-default": {
			Type:      LLMProviderTypeOpenAI,
			Model:     "gpt-5",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		"anthropic-default": {
			Type:      LLMProviderTypeAnthropic,
			Model:     "claude-sonnet-4-20250514",
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
		"xai-default": {
			Type:      LLMProviderTypeXAI,
			Model:     "grok-4",
			APIKeyEnv: "XAI_API_KEY",
		},
	}
}

func builtinChains() map[string]ChainConfig {
	return map[string]ChainConfig{
		"kubernetes-agent-chain": {
			AlertTypes: []string{"kubernetes", "NamespaceTerminating"},
			Stages: []StageConfig{
				{Name: "investigation", Agent: "KubernetesAgent"},
			},
		},
	}
}

const defaultRunbookContent = `# Generic Investigation Runbook

No runbook was provided for this alert type.

1. Identify the affected resources from the alert data.
2. Gather current state via the available diagnostic tools.
3. Compare observed state against expected state.
4. Summarize the most likely root cause and suggested remediation.`
