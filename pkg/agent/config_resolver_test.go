package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

func resolverTestConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{
			LLMProvider:       "google-default",
			IterationStrategy: config.IterationStrategyReact,
			MaxIterations:     config.IntPtr(25),
		},
		Settings: &config.Settings{
			MaxIterations:                  30,
			ForceConclusionAtMaxIterations: true,
			LLMTimeout:                     210 * time.Second,
		},
		AgentRegistry: config.NewAgentRegistry(map[string]config.AgentConfig{
			"kubernetes-agent": {
				MCPServers:         []string{"kubernetes-server"},
				CustomInstructions: "You are a K8s agent",
			},
			"native-agent": {
				IterationStrategy: config.IterationStrategyNativeThinking,
				LLMProvider:       "google-default",
			},
			"native-on-openai": {
				IterationStrategy: config.IterationStrategyNativeThinking,
				LLMProvider:       "openai-default",
			},
		}),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]config.LLMProviderConfig{
			"google-default": {Type: config.LLMProviderTypeGoogle, Model: "gemini-2.5-pro"},
			"openai-default": {Type: config.LLMProviderTypeOpenAI, Model: "gpt-5"},
		}, "google-default"),
	}
}

func TestResolveAgentConfig_Defaults(t *testing.T) {
	cfg := resolverTestConfig()

	resolved, err := ResolveAgentConfig(cfg, config.StageConfig{Name: "investigate"}, "kubernetes-agent", nil)
	require.NoError(t, err)

	assert.Equal(t, "kubernetes-agent", resolved.AgentName)
	assert.Equal(t, config.IterationStrategyReact, resolved.Strategy)
	assert.Equal(t, "google-default", resolved.ProviderName)
	assert.Equal(t, "gemini-2.5-pro", resolved.Provider.Model)
	assert.Equal(t, 25, resolved.MaxIterations) // defaults override settings
	assert.True(t, resolved.ForceConclusion)
	assert.Equal(t, 210*time.Second, resolved.LLMTimeout)
	assert.Equal(t, []string{"kubernetes-server"}, resolved.MCPServers)
	assert.Equal(t, "You are a K8s agent", resolved.CustomInstructions)
}

func TestResolveAgentConfig_Hierarchy(t *testing.T) {
	cfg := resolverTestConfig()

	t.Run("stage overrides agent strategy", func(t *testing.T) {
		stage := config.StageConfig{
			Name:              "summarize",
			IterationStrategy: config.IterationStrategyReactFinalAnalysis,
		}
		resolved, err := ResolveAgentConfig(cfg, stage, "native-agent", nil)
		require.NoError(t, err)
		assert.Equal(t, config.IterationStrategyReactFinalAnalysis, resolved.Strategy)
	})

	t.Run("child overrides stage", func(t *testing.T) {
		stage := config.StageConfig{
			Name:              "investigate",
			IterationStrategy: config.IterationStrategyReactStage,
			MaxIterations:     config.IntPtr(10),
		}
		child := &config.ChildAgentConfig{
			Agent:             "kubernetes-agent",
			IterationStrategy: config.IterationStrategyReact,
			MaxIterations:     config.IntPtr(5),
		}
		resolved, err := ResolveAgentConfig(cfg, stage, "kubernetes-agent", child)
		require.NoError(t, err)
		assert.Equal(t, config.IterationStrategyReact, resolved.Strategy)
		assert.Equal(t, 5, resolved.MaxIterations)
	})

	t.Run("stage max iterations without child", func(t *testing.T) {
		stage := config.StageConfig{Name: "investigate", MaxIterations: config.IntPtr(12)}
		resolved, err := ResolveAgentConfig(cfg, stage, "kubernetes-agent", nil)
		require.NoError(t, err)
		assert.Equal(t, 12, resolved.MaxIterations)
	})
}

func TestResolveAgentConfig_NativeThinkingProviderCheck(t *testing.T) {
	cfg := resolverTestConfig()

	t.Run("google provider accepted", func(t *testing.T) {
		resolved, err := ResolveAgentConfig(cfg, config.StageConfig{Name: "investigate"}, "native-agent", nil)
		require.NoError(t, err)
		assert.Equal(t, config.IterationStrategyNativeThinking, resolved.Strategy)
	})

	t.Run("non-google provider rejected", func(t *testing.T) {
		_, err := ResolveAgentConfig(cfg, config.StageConfig{Name: "investigate"}, "native-on-openai", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "native-thinking requires a google provider")
	})
}

func TestResolveAgentConfig_UnknownAgent(t *testing.T) {
	cfg := resolverTestConfig()

	_, err := ResolveAgentConfig(cfg, config.StageConfig{Name: "investigate"}, "no-such-agent", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-agent")
}

func TestResolveAgentConfig_UnknownProvider(t *testing.T) {
	cfg := resolverTestConfig()
	cfg.AgentRegistry = config.NewAgentRegistry(map[string]config.AgentConfig{
		"bad-provider-agent": {LLMProvider: "missing"},
	})

	_, err := ResolveAgentConfig(cfg, config.StageConfig{Name: "investigate"}, "bad-provider-agent", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
