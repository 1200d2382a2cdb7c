package controller

import (
	"fmt"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
)

// ForStrategy returns the controller for a resolved agent configuration.
// native-thinking is rejected up front for non-Google providers so the
// misconfiguration fails at stage start, not mid-loop.
func ForStrategy(cfg *agent.ResolvedAgentConfig) (Controller, error) {
	switch cfg.Strategy {
	case config.IterationStrategyReact:
		return NewReActController(), nil
	case config.IterationStrategyReactStage:
		return NewReActStageController(), nil
	case config.IterationStrategyReactFinalAnalysis:
		return NewFinalAnalysisController(), nil
	case config.IterationStrategyNativeThinking:
		if cfg.Provider == nil {
			return nil, fmt.Errorf("native-thinking strategy requires a google provider, none resolved")
		}
		if cfg.Provider.Type != config.LLMProviderTypeGoogle {
			return nil, fmt.Errorf("native-thinking strategy requires a google provider, got %q", cfg.Provider.Type)
		}
		return NewNativeThinkingController(), nil
	default:
		return nil, fmt.Errorf("unknown iteration strategy %q", cfg.Strategy)
	}
}
