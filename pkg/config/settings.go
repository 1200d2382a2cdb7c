package config

import "time"

// Settings groups runtime tunables for session processing.
type Settings struct {
	// MaxIterations bounds every iteration controller loop.
	MaxIterations int `yaml:"max_iterations"`

	// ForceConclusionAtMaxIterations makes controllers perform one final
	// tool-less LLM call at the iteration budget instead of pausing.
	ForceConclusionAtMaxIterations bool `yaml:"force_conclusion_at_max_iterations"`

	// LLMTimeout bounds a single LLM call.
	LLMTimeout time.Duration `yaml:"llm_timeout"`

	// MCPToolTimeout bounds a single MCP tool call.
	MCPToolTimeout time.Duration `yaml:"mcp_tool_timeout"`

	// MCPHealthInterval is the health monitor probe interval.
	MCPHealthInterval time.Duration `yaml:"mcp_health_interval"`

	// SummaryMaxTokens bounds the executive-summary LLM call.
	SummaryMaxTokens int `yaml:"summary_max_tokens"`
}

// DefaultSettings returns the built-in runtime defaults.
func DefaultSettings() *Settings {
	return &Settings{
		MaxIterations:                  30,
		ForceConclusionAtMaxIterations: false,
		LLMTimeout:                     210 * time.Second,
		MCPToolTimeout:                 70 * time.Second,
		MCPHealthInterval:              30 * time.Second,
		SummaryMaxTokens:               1000,
	}
}

// QueueConfig contains queue and worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentSessions is the per-pod limit of concurrent sessions.
	MaxConcurrentSessions int `yaml:"max_concurrent_sessions"`

	// PollInterval is the base interval for checking pending sessions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a worker refreshes the session's
	// last_interaction_at_us heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// SessionTimeout is the maximum wall-clock time for one session.
	SessionTimeout time.Duration `yaml:"session_timeout"`

	// GracefulShutdownTimeout is the max wait for in-flight sessions on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned sessions.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a session may go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentSessions:   5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		SessionTimeout:          15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// SessionRetentionDays is how many days to keep terminal sessions.
	SessionRetentionDays int `yaml:"session_retention_days"`

	// EventTTL is the maximum age of orphaned Event rows before deletion.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 365,
		EventTTL:             1 * time.Hour,
		CleanupInterval:      12 * time.Hour,
	}
}

// RunbookConfig holds runbook download settings.
type RunbookConfig struct {
	RepoURL        string        `yaml:"repo_url,omitempty"`
	CacheTTL       time.Duration `yaml:"-"`
	AllowedDomains []string      `yaml:"allowed_domains,omitempty"`
}

// GitHubConfig holds GitHub integration settings.
type GitHubConfig struct {
	TokenEnv string `yaml:"token_env,omitempty"`
}

// SlackConfig holds Slack notification settings. Notifications are off
// unless enabled and a channel is configured.
type SlackConfig struct {
	Enabled      bool
	TokenEnv     string // Env var holding the bot token
	Channel      string // Channel ID, e.g. "C12345678"
	DashboardURL string // Base URL for session links in messages
}

// Defaults contains system-wide fallbacks applied when components don't
// specify their own values.
type Defaults struct {
	LLMProvider       string                `yaml:"llm_provider,omitempty"`
	MaxIterations     *int                  `yaml:"max_iterations,omitempty"`
	IterationStrategy IterationStrategy     `yaml:"iteration_strategy,omitempty"`
	FailurePolicy     FailurePolicy         `yaml:"failure_policy,omitempty"`
	AlertType         string                `yaml:"alert_type,omitempty"`
	Runbook           string                `yaml:"runbook,omitempty"`
	AlertMasking      *AlertMaskingDefaults `yaml:"alert_masking,omitempty"`
}

// AlertMaskingDefaults holds alert payload masking settings, applied
// system-wide to alert data before storage.
type AlertMaskingDefaults struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`
}
