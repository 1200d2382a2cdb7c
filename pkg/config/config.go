// Package config loads, merges, and validates the service configuration:
// built-in defaults, tarsy.yaml, and llm-providers.yaml from a config
// directory, with environment expansion.
package config

// Config is the fully resolved, validated configuration. Read-only after
// Initialize returns.
type Config struct {
	configDir string

	Defaults  *Defaults
	Settings  *Settings
	Queue     *QueueConfig
	Retention *RetentionConfig
	GitHub    *GitHubConfig
	Runbooks  *RunbookConfig
	Slack     *SlackConfig

	AgentRegistry       *AgentRegistry
	ChainRegistry       *ChainRegistry
	MCPServerRegistry   *MCPServerRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes registry sizes for startup logging.
type Stats struct {
	Agents       int
	Chains       int
	MCPServers   int
	LLMProviders int
}

// Stats returns registry sizes.
func (c *Config) Stats() Stats {
	return Stats{
		Agents:       len(c.AgentRegistry.Names()),
		Chains:       len(c.ChainRegistry.ChainIDs()),
		MCPServers:   len(c.MCPServerRegistry.EnabledServerIDs()),
		LLMProviders: len(c.LLMProviderRegistry.providers),
	}
}
