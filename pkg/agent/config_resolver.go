package agent

import (
	"fmt"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

// ResolveAgentConfig builds the final configuration for one stage execution
// by applying the hierarchy: settings/defaults → agent definition → stage →
// parallel child. Later levels override earlier ones; empty values fall
// through.
//
// agentName selects the agent definition; child carries per-child overrides
// for multi_agent parallel groups (nil for single stages and replicas).
func ResolveAgentConfig(
	cfg *config.Config,
	stage config.StageConfig,
	agentName string,
	child *config.ChildAgentConfig,
) (*ResolvedAgentConfig, error) {
	agentDef, err := cfg.AgentRegistry.Get(agentName)
	if err != nil {
		return nil, fmt.Errorf("agent %q not found: %w", agentName, err)
	}

	defaults := cfg.Defaults
	settings := cfg.Settings

	// Iteration strategy: defaults → agent definition → stage → child
	strategy := defaults.IterationStrategy
	if agentDef.IterationStrategy != "" {
		strategy = agentDef.IterationStrategy
	}
	if stage.IterationStrategy != "" {
		strategy = stage.IterationStrategy
	}
	if child != nil && child.IterationStrategy != "" {
		strategy = child.IterationStrategy
	}
	if !strategy.IsValid() {
		return nil, fmt.Errorf("invalid iteration strategy %q for agent %q", strategy, agentName)
	}

	// LLM provider: default provider → agent definition
	providerName := defaults.LLMProvider
	if agentDef.LLMProvider != "" {
		providerName = agentDef.LLMProvider
	}
	provider, err := cfg.LLMProviderRegistry.Get(providerName)
	if err != nil {
		return nil, fmt.Errorf("LLM provider for agent %q: %w", agentName, err)
	}
	if providerName == "" {
		providerName = cfg.LLMProviderRegistry.DefaultProvider()
	}

	// Native thinking drives provider-specific tool calling and only the
	// google path implements it.
	if strategy == config.IterationStrategyNativeThinking && provider.Type != config.LLMProviderTypeGoogle {
		return nil, fmt.Errorf(
			"agent %q uses native-thinking but provider %q has type %q; native-thinking requires a google provider",
			agentName, providerName, provider.Type)
	}

	// Max iterations: settings → defaults → stage → child
	maxIter := settings.MaxIterations
	if defaults.MaxIterations != nil {
		maxIter = *defaults.MaxIterations
	}
	if stage.MaxIterations != nil {
		maxIter = *stage.MaxIterations
	}
	if child != nil && child.MaxIterations != nil {
		maxIter = *child.MaxIterations
	}

	return &ResolvedAgentConfig{
		AgentName:          agentName,
		Strategy:           strategy,
		Provider:           &provider,
		ProviderName:       providerName,
		MaxIterations:      maxIter,
		ForceConclusion:    settings.ForceConclusionAtMaxIterations,
		LLMTimeout:         settings.LLMTimeout,
		MCPServers:         agentDef.MCPServers,
		CustomInstructions: agentDef.CustomInstructions,
	}, nil
}
