package config

import (
	"errors"
	"fmt"
)

// validator cross-checks every reference in the resolved configuration.
// All failures surface at startup; sessions never see an unresolvable name.
type validator struct {
	cfg *Config
}

func newValidator(cfg *Config) *validator {
	return &validator{cfg: cfg}
}

func (v *validator) validateAll() error {
	var errs []error
	errs = append(errs, v.validateAgents()...)
	errs = append(errs, v.validateChains()...)
	errs = append(errs, v.validateMCPServers()...)
	errs = append(errs, v.validateLLMProviders()...)
	return errors.Join(errs...)
}

func (v *validator) validateAgents() []error {
	var errs []error
	for _, name := range v.cfg.AgentRegistry.Names() {
		agent, _ := v.cfg.AgentRegistry.Get(name)
		if agent.IterationStrategy != "" && !agent.IterationStrategy.IsValid() {
			errs = append(errs, NewValidationError("agent", name, "iteration_strategy",
				fmt.Errorf("unknown strategy %q", agent.IterationStrategy)))
		}
		if len(agent.MCPServers) == 0 {
			errs = append(errs, NewValidationError("agent", name, "mcp_servers",
				errors.New("at least one MCP server is required")))
		}
		for _, serverID := range agent.MCPServers {
			if _, err := v.cfg.MCPServerRegistry.Get(serverID); err != nil {
				errs = append(errs, NewValidationError("agent", name, "mcp_servers", err))
			}
		}
		if agent.LLMProvider != "" {
			if _, err := v.cfg.LLMProviderRegistry.Get(agent.LLMProvider); err != nil {
				errs = append(errs, NewValidationError("agent", name, "llm_provider", err))
			}
		}
		if agent.MaxIterations != nil && *agent.MaxIterations < 1 {
			errs = append(errs, NewValidationError("agent", name, "max_iterations",
				errors.New("must be at least 1")))
		}
	}
	return errs
}

func (v *validator) validateChains() []error {
	var errs []error
	for _, chainID := range v.cfg.ChainRegistry.ChainIDs() {
		chain, _ := v.cfg.ChainRegistry.Get(chainID)
		if len(chain.Stages) == 0 {
			errs = append(errs, NewValidationError("chain", chainID, "stages",
				errors.New("at least one stage is required")))
			continue
		}
		for i, stage := range chain.Stages {
			field := fmt.Sprintf("stages[%d]", i)
			if stage.Name == "" {
				errs = append(errs, NewValidationError("chain", chainID, field,
					errors.New("stage name is required")))
			}
			if stage.Parallel == nil {
				if stage.Agent == "" {
					errs = append(errs, NewValidationError("chain", chainID, field,
						errors.New("agent is required for non-parallel stages")))
				} else if _, err := v.cfg.AgentRegistry.Get(stage.Agent); err != nil {
					errs = append(errs, NewValidationError("chain", chainID, field, err))
				}
				continue
			}
			errs = append(errs, v.validateParallel(chainID, field, stage)...)
		}
	}
	return errs
}

func (v *validator) validateParallel(chainID, field string, stage StageConfig) []error {
	var errs []error
	p := stage.Parallel
	if !p.Type.IsValid() || p.Type == ParallelTypeSingle {
		errs = append(errs, NewValidationError("chain", chainID, field+".parallel.type",
			fmt.Errorf("must be %q or %q", ParallelTypeMultiAgent, ParallelTypeReplica)))
	}
	if p.FailurePolicy != "" && !p.FailurePolicy.IsValid() {
		errs = append(errs, NewValidationError("chain", chainID, field+".parallel.failure_policy",
			fmt.Errorf("unknown policy %q", p.FailurePolicy)))
	}
	switch p.Type {
	case ParallelTypeReplica:
		if p.Count < 2 {
			errs = append(errs, NewValidationError("chain", chainID, field+".parallel.count",
				errors.New("replica groups need count >= 2")))
		}
		if stage.Agent == "" {
			errs = append(errs, NewValidationError("chain", chainID, field,
				errors.New("replica groups need the stage agent set")))
		} else if _, err := v.cfg.AgentRegistry.Get(stage.Agent); err != nil {
			errs = append(errs, NewValidationError("chain", chainID, field, err))
		}
	case ParallelTypeMultiAgent:
		if len(p.Children) < 2 {
			errs = append(errs, NewValidationError("chain", chainID, field+".parallel.children",
				errors.New("multi_agent groups need at least 2 children")))
		}
		for j, child := range p.Children {
			if _, err := v.cfg.AgentRegistry.Get(child.Agent); err != nil {
				errs = append(errs, NewValidationError("chain", chainID,
					fmt.Sprintf("%s.parallel.children[%d]", field, j), err))
			}
		}
	}
	return errs
}

func (v *validator) validateMCPServers() []error {
	var errs []error
	for _, id := range v.cfg.MCPServerRegistry.EnabledServerIDs() {
		server, _ := v.cfg.MCPServerRegistry.Get(id)
		if !server.Transport.Type.IsValid() {
			errs = append(errs, NewValidationError("mcp_server", id, "transport.type",
				fmt.Errorf("unknown transport %q", server.Transport.Type)))
			continue
		}
		switch server.Transport.Type {
		case TransportTypeStdio:
			if server.Transport.Command == "" {
				errs = append(errs, NewValidationError("mcp_server", id, "transport.command",
					errors.New("required for stdio transport")))
			}
		case TransportTypeHTTP:
			if server.Transport.URL == "" {
				errs = append(errs, NewValidationError("mcp_server", id, "transport.url",
					errors.New("required for http transport")))
			}
		}
	}
	return errs
}

func (v *validator) validateLLMProviders() []error {
	var errs []error
	for name, provider := range v.cfg.LLMProviderRegistry.providers {
		if !provider.Type.IsValid() {
			errs = append(errs, NewValidationError("llm_provider", name, "type",
				fmt.Errorf("unknown provider type %q", provider.Type)))
		}
		if provider.Model == "" {
			errs = append(errs, NewValidationError("llm_provider", name, "model",
				errors.New("model is required")))
		}
	}
	if _, err := v.cfg.LLMProviderRegistry.Get(""); err != nil {
		errs = append(errs, NewValidationError("defaults", "llm_provider", "", err))
	}
	return errs
}
