package config

// IterationStrategy selects the controller that drives a stage's LLM loop.
type IterationStrategy string

const (
	// IterationStrategyReact is the text-parsed Thought/Action/Final Answer loop.
	IterationStrategyReact IterationStrategy = "react"
	// IterationStrategyReactStage is the ReAct loop producing a stage result
	// summary for later stages instead of a user-facing final answer.
	IterationStrategyReactStage IterationStrategy = "react-stage"
	// IterationStrategyReactFinalAnalysis is a single tool-less LLM call.
	IterationStrategyReactFinalAnalysis IterationStrategy = "react-final-analysis"
	// IterationStrategyNativeThinking uses provider-native tool calling (Google only).
	IterationStrategyNativeThinking IterationStrategy = "native-thinking"
)

// IsValid reports whether the iteration strategy is known.
func (s IterationStrategy) IsValid() bool {
	switch s {
	case IterationStrategyReact,
		IterationStrategyReactStage,
		IterationStrategyReactFinalAnalysis,
		IterationStrategyNativeThinking:
		return true
	default:
		return false
	}
}

// ParallelType classifies a stage execution's position in a parallel group.
type ParallelType string

const (
	ParallelTypeSingle     ParallelType = "single"
	ParallelTypeMultiAgent ParallelType = "multi_agent"
	ParallelTypeReplica    ParallelType = "replica"
)

// IsValid reports whether the parallel type is known.
func (t ParallelType) IsValid() bool {
	return t == ParallelTypeSingle || t == ParallelTypeMultiAgent || t == ParallelTypeReplica
}

// FailurePolicy defines how child outcomes aggregate into a parallel
// stage's overall status.
type FailurePolicy string

const (
	// FailurePolicyAll requires every child to complete.
	FailurePolicyAll FailurePolicy = "all"
	// FailurePolicyAny requires at least one child to complete.
	FailurePolicyAny FailurePolicy = "any"
)

// IsValid reports whether the failure policy is known.
func (p FailurePolicy) IsValid() bool {
	return p == FailurePolicyAll || p == FailurePolicyAny
}

// TransportType defines MCP server transport types.
type TransportType string

const (
	// TransportTypeStdio uses subprocess communication via stdin/stdout.
	TransportTypeStdio TransportType = "stdio"
	// TransportTypeHTTP uses streamable HTTP JSON-RPC.
	TransportTypeHTTP TransportType = "http"
)

// IsValid reports whether the transport type is known.
func (t TransportType) IsValid() bool {
	return t == TransportTypeStdio || t == TransportTypeHTTP
}

// LLMProviderType defines supported LLM providers.
type LLMProviderType string

const (
	LLMProviderTypeGoogle    LLMProviderType = "google"
	LLMProviderTypeOpenAI    LLMProviderType = "openai"
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	LLMProviderTypeXAI       LLMProviderType = "xai"
)

// IsValid reports whether the LLM provider type is known.
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeGoogle, LLMProviderTypeOpenAI, LLMProviderTypeAnthropic, LLMProviderTypeXAI:
		return true
	default:
		return false
	}
}

// DatabaseBackend selects the persistence engine.
type DatabaseBackend string

const (
	DatabaseBackendPostgres DatabaseBackend = "postgres"
	DatabaseBackendSQLite   DatabaseBackend = "sqlite"
)

// IsValid reports whether the backend is known.
func (b DatabaseBackend) IsValid() bool {
	return b == DatabaseBackendPostgres || b == DatabaseBackendSQLite
}
