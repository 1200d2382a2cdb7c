package config

// Shared types used across configuration structs.

// TransportConfig defines MCP server transport configuration.
type TransportConfig struct {
	Type TransportType `yaml:"type"`

	// For stdio transport
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`

	// For http transport
	URL         string `yaml:"url,omitempty"`
	BearerToken string `yaml:"bearer_token,omitempty"`
	Timeout     int    `yaml:"timeout,omitempty"` // Seconds
}

// MaskingConfig defines data masking configuration for an MCP server.
type MaskingConfig struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroups  []string         `yaml:"pattern_groups,omitempty"`
	Patterns       []string         `yaml:"patterns,omitempty"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// MCPServerConfig defines one MCP server the pool may connect to.
type MCPServerConfig struct {
	Enabled      *bool          `yaml:"enabled,omitempty"` // nil = enabled
	Transport    TransportConfig `yaml:"transport"`
	Instructions string         `yaml:"instructions,omitempty"`
	DataMasking  *MaskingConfig `yaml:"data_masking,omitempty"`
}

// IsEnabled reports whether the server participates in the pool.
func (c *MCPServerConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// AgentConfig defines a configured agent: allowed MCP servers, custom
// instructions, and the iteration strategy driving it.
type AgentConfig struct {
	Description        string            `yaml:"description,omitempty"`
	IterationStrategy  IterationStrategy `yaml:"iteration_strategy,omitempty"`
	MCPServers         []string          `yaml:"mcp_servers,omitempty"`
	CustomInstructions string            `yaml:"custom_instructions,omitempty"`
	LLMProvider        string            `yaml:"llm_provider,omitempty"`
	MaxIterations      *int              `yaml:"max_iterations,omitempty"`
}

// LLMProviderConfig defines one LLM provider endpoint.
type LLMProviderConfig struct {
	Type        LLMProviderType `yaml:"type"`
	Model       string          `yaml:"model"`
	APIKeyEnv   string          `yaml:"api_key_env,omitempty"`
	BaseURL     string          `yaml:"base_url,omitempty"`
	Temperature *float64        `yaml:"temperature,omitempty"`
	MaxTokens   int             `yaml:"max_tokens,omitempty"`
}

// ChainConfig defines an ordered list of stages selected by alert type.
type ChainConfig struct {
	AlertTypes []string      `yaml:"alert_types"`
	Stages     []StageConfig `yaml:"stages"`
}

// StageConfig defines one step in a chain.
type StageConfig struct {
	Name              string            `yaml:"name"`
	Agent             string            `yaml:"agent,omitempty"`
	IterationStrategy IterationStrategy `yaml:"iteration_strategy,omitempty"`
	MaxIterations     *int              `yaml:"max_iterations,omitempty"`
	Parallel          *ParallelConfig   `yaml:"parallel,omitempty"`
}

// ParallelConfig defines a parallel group within a stage.
// For type=replica, Count repeats the stage's agent; Children is ignored.
// For type=multi_agent, Children lists the distinct sibling agents.
type ParallelConfig struct {
	Type          ParallelType        `yaml:"type"`
	Count         int                 `yaml:"count,omitempty"`
	FailurePolicy FailurePolicy       `yaml:"failure_policy,omitempty"`
	Children      []ChildAgentConfig  `yaml:"children,omitempty"`
}

// ChildAgentConfig is one sibling of a multi_agent parallel group.
type ChildAgentConfig struct {
	Agent             string            `yaml:"agent"`
	IterationStrategy IterationStrategy `yaml:"iteration_strategy,omitempty"`
	MaxIterations     *int              `yaml:"max_iterations,omitempty"`
}

// ChildCount returns the number of parallel children the group spawns.
func (p *ParallelConfig) ChildCount() int {
	if p.Type == ParallelTypeReplica {
		return p.Count
	}
	return len(p.Children)
}

// IntPtr returns a pointer to n. Convenience for *int struct fields.
func IntPtr(n int) *int { return &n }

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }
