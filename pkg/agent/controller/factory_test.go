package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
)

func TestForStrategy(t *testing.T) {
	googleProvider := &config.LLMProviderConfig{Type: config.LLMProviderTypeGoogle, Model: "gemini-test"}
	openaiProvider := &config.LLMProviderConfig{Type: config.LLMProviderTypeOpenAI, Model: "gpt-test"}

	tests := []struct {
		name     string
		cfg      *agent.ResolvedAgentConfig
		wantType any
		wantErr  string
	}{
		{
			name:     "react",
			cfg:      &agent.ResolvedAgentConfig{Strategy: config.IterationStrategyReact, Provider: openaiProvider},
			wantType: &ReActController{},
		},
		{
			name:     "react-stage",
			cfg:      &agent.ResolvedAgentConfig{Strategy: config.IterationStrategyReactStage, Provider: openaiProvider},
			wantType: &ReActController{},
		},
		{
			name:     "react-final-analysis",
			cfg:      &agent.ResolvedAgentConfig{Strategy: config.IterationStrategyReactFinalAnalysis, Provider: openaiProvider},
			wantType: &FinalAnalysisController{},
		},
		{
			name:     "native-thinking with google",
			cfg:      &agent.ResolvedAgentConfig{Strategy: config.IterationStrategyNativeThinking, Provider: googleProvider},
			wantType: &NativeThinkingController{},
		},
		{
			name:    "native-thinking with non-google provider",
			cfg:     &agent.ResolvedAgentConfig{Strategy: config.IterationStrategyNativeThinking, Provider: openaiProvider},
			wantErr: "requires a google provider",
		},
		{
			name:    "native-thinking without provider",
			cfg:     &agent.ResolvedAgentConfig{Strategy: config.IterationStrategyNativeThinking},
			wantErr: "requires a google provider",
		},
		{
			name:    "unknown strategy",
			cfg:     &agent.ResolvedAgentConfig{Strategy: "chat-loop"},
			wantErr: "unknown iteration strategy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ForStrategy(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, c)
		})
	}
}
