package config

import (
	"fmt"
	"sort"
)

// Registries are built once at startup and read-only afterwards, so no
// locking is needed at runtime.

// AgentRegistry resolves agent names to configurations.
type AgentRegistry struct {
	agents map[string]AgentConfig
}

// NewAgentRegistry creates a registry from merged agent configs.
func NewAgentRegistry(agents map[string]AgentConfig) *AgentRegistry {
	return &AgentRegistry{agents: agents}
}

// Get returns the agent config for name.
func (r *AgentRegistry) Get(name string) (AgentConfig, error) {
	cfg, ok := r.agents[name]
	if !ok {
		return AgentConfig{}, fmt.Errorf("%w: %q", ErrAgentNotFound, name)
	}
	return cfg, nil
}

// Names returns all registered agent names, sorted.
func (r *AgentRegistry) Names() []string {
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChainRegistry resolves alert types to chain definitions.
type ChainRegistry struct {
	chains           map[string]ChainConfig
	byAlertType      map[string]string // alert_type → chain_id
	defaultAlertType string
}

// NewChainRegistry creates a registry from merged chain configs.
// defaultAlertType is used when no chain matches the submitted alert type.
func NewChainRegistry(chains map[string]ChainConfig, defaultAlertType string) *ChainRegistry {
	byAlert := make(map[string]string)
	for chainID, chain := range chains {
		for _, at := range chain.AlertTypes {
			byAlert[at] = chainID
		}
	}
	return &ChainRegistry{
		chains:           chains,
		byAlertType:      byAlert,
		defaultAlertType: defaultAlertType,
	}
}

// Get returns the chain definition for chainID.
func (r *ChainRegistry) Get(chainID string) (ChainConfig, error) {
	chain, ok := r.chains[chainID]
	if !ok {
		return ChainConfig{}, fmt.Errorf("%w: %q", ErrChainNotFound, chainID)
	}
	return chain, nil
}

// ResolveAlertType returns the chain for alertType. Resolution order:
// exact alert-type match, then the registry's default alert type.
func (r *ChainRegistry) ResolveAlertType(alertType string) (string, ChainConfig, error) {
	if chainID, ok := r.byAlertType[alertType]; ok {
		return chainID, r.chains[chainID], nil
	}
	if chainID, ok := r.byAlertType[r.defaultAlertType]; ok {
		return chainID, r.chains[chainID], nil
	}
	return "", ChainConfig{}, fmt.Errorf("%w: no chain for alert type %q and no default", ErrChainNotFound, alertType)
}

// ChainIDs returns all registered chain IDs, sorted.
func (r *ChainRegistry) ChainIDs() []string {
	ids := make([]string, 0, len(r.chains))
	for id := range r.chains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AlertTypes returns all alert types with a chain mapping, sorted.
func (r *ChainRegistry) AlertTypes() []string {
	types := make([]string, 0, len(r.byAlertType))
	for at := range r.byAlertType {
		types = append(types, at)
	}
	sort.Strings(types)
	return types
}

// MCPServerRegistry resolves MCP server IDs to configurations.
type MCPServerRegistry struct {
	servers map[string]MCPServerConfig
}

// NewMCPServerRegistry creates a registry from merged MCP server configs.
func NewMCPServerRegistry(servers map[string]MCPServerConfig) *MCPServerRegistry {
	return &MCPServerRegistry{servers: servers}
}

// Get returns the server config for id.
func (r *MCPServerRegistry) Get(id string) (MCPServerConfig, error) {
	cfg, ok := r.servers[id]
	if !ok {
		return MCPServerConfig{}, fmt.Errorf("%w: %q", ErrMCPServerNotFound, id)
	}
	return cfg, nil
}

// GetAll returns all registered server configs keyed by ID.
func (r *MCPServerRegistry) GetAll() map[string]MCPServerConfig {
	return r.servers
}

// EnabledServerIDs returns the IDs of all enabled servers, sorted.
func (r *MCPServerRegistry) EnabledServerIDs() []string {
	ids := make([]string, 0, len(r.servers))
	for id, cfg := range r.servers {
		if cfg.IsEnabled() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// LLMProviderRegistry resolves provider names to configurations.
type LLMProviderRegistry struct {
	providers       map[string]LLMProviderConfig
	defaultProvider string
}

// NewLLMProviderRegistry creates a registry from merged provider configs.
func NewLLMProviderRegistry(providers map[string]LLMProviderConfig, defaultProvider string) *LLMProviderRegistry {
	return &LLMProviderRegistry{providers: providers, defaultProvider: defaultProvider}
}

// Get returns the provider config for name. An empty name resolves to the
// configured default provider.
func (r *LLMProviderRegistry) Get(name string) (LLMProviderConfig, error) {
	if name == "" {
		name = r.defaultProvider
	}
	cfg, ok := r.providers[name]
	if !ok {
		return LLMProviderConfig{}, fmt.Errorf("%w: %q", ErrLLMProviderNotFound, name)
	}
	return cfg, nil
}

// DefaultProvider returns the configured default provider name.
func (r *LLMProviderRegistry) DefaultProvider() string {
	return r.defaultProvider
}
