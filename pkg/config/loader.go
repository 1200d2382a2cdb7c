package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// tarsyYAML is the complete tarsy.yaml file structure.
type tarsyYAML struct {
	System      *systemYAML                `yaml:"system"`
	MCPServers  map[string]MCPServerConfig `yaml:"mcp_servers"`
	Agents      map[string]AgentConfig     `yaml:"agents"`
	AgentChains map[string]ChainConfig     `yaml:"agent_chains"`
	Defaults    *Defaults                  `yaml:"defaults"`
	Settings    *Settings                  `yaml:"settings"`
	Queue       *QueueConfig               `yaml:"queue"`
}

// systemYAML groups system-wide infrastructure settings.
type systemYAML struct {
	DashboardURL string           `yaml:"dashboard_url,omitempty"`
	GitHub       *githubYAML      `yaml:"github"`
	Runbooks     *runbooksYAML    `yaml:"runbooks"`
	Slack        *slackYAML       `yaml:"slack"`
	Retention    *RetentionConfig `yaml:"retention"`
}

type githubYAML struct {
	TokenEnv string `yaml:"token_env,omitempty"`
}

type slackYAML struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

type runbooksYAML struct {
	RepoURL        string   `yaml:"repo_url,omitempty"`
	CacheTTL       string   `yaml:"cache_ttl,omitempty"`
	AllowedDomains []string `yaml:"allowed_domains,omitempty"`
}

// llmProvidersYAML is the complete llm-providers.yaml file structure.
type llmProvidersYAML struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, merges, validates, and returns ready-to-use
// configuration. It is the single configuration entry point; any error it
// returns is a startup failure.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := newValidator(cfg).validateAll(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"agents", stats.Agents,
		"chains", stats.Chains,
		"mcp_servers", stats.MCPServers,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &fileLoader{configDir: configDir}

	var tarsyCfg tarsyYAML
	tarsyCfg.MCPServers = make(map[string]MCPServerConfig)
	tarsyCfg.Agents = make(map[string]AgentConfig)
	tarsyCfg.AgentChains = make(map[string]ChainConfig)
	if err := loader.loadYAML("tarsy.yaml", &tarsyCfg); err != nil {
		return nil, fmt.Errorf("tarsy.yaml: %w", err)
	}

	var providersCfg llmProvidersYAML
	providersCfg.LLMProviders = make(map[string]LLMProviderConfig)
	if err := loader.loadYAML("llm-providers.yaml", &providersCfg); err != nil {
		return nil, fmt.Errorf("llm-providers.yaml: %w", err)
	}

	builtin := GetBuiltinConfig()

	// User-defined entries override built-ins by name.
	agents := mergeMaps(builtin.Agents, tarsyCfg.Agents)
	mcpServers := mergeMaps(builtin.MCPServers, tarsyCfg.MCPServers)
	chains := mergeMaps(builtin.ChainDefinitions, tarsyCfg.AgentChains)
	providers := mergeMaps(builtin.LLMProviders, providersCfg.LLMProviders)

	defaults := tarsyCfg.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.AlertType == "" {
		defaults.AlertType = builtin.DefaultAlertType
	}
	if defaults.Runbook == "" {
		defaults.Runbook = builtin.DefaultRunbook
	}
	if defaults.LLMProvider == "" {
		defaults.LLMProvider = "google-default"
	}
	if defaults.FailurePolicy == "" {
		defaults.FailurePolicy = FailurePolicyAny
	}
	if defaults.AlertMasking == nil {
		defaults.AlertMasking = &AlertMaskingDefaults{
			Enabled:      true,
			PatternGroup: "security",
		}
	}

	settings := resolveSettings(tarsyCfg.Settings)
	queue := resolveQueue(tarsyCfg.Queue)
	retention := resolveRetention(tarsyCfg.System)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Settings:            settings,
		Queue:               queue,
		Retention:           retention,
		GitHub:              resolveGitHub(tarsyCfg.System),
		Runbooks:            resolveRunbooks(tarsyCfg.System),
		Slack:               resolveSlack(tarsyCfg.System),
		AgentRegistry:       NewAgentRegistry(agents),
		ChainRegistry:       NewChainRegistry(chains, defaults.AlertType),
		MCPServerRegistry:   NewMCPServerRegistry(mcpServers),
		LLMProviderRegistry: NewLLMProviderRegistry(providers, defaults.LLMProvider),
	}, nil
}

type fileLoader struct {
	configDir string
}

func (l *fileLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}

// mergeMaps overlays user entries on built-ins; user wins on name collision.
func mergeMaps[V any](builtin, user map[string]V) map[string]V {
	out := make(map[string]V, len(builtin)+len(user))
	for k, v := range builtin {
		out[k] = v
	}
	for k, v := range user {
		out[k] = v
	}
	return out
}

func resolveSettings(user *Settings) *Settings {
	cfg := DefaultSettings()
	if user == nil {
		return cfg
	}
	if user.MaxIterations > 0 {
		cfg.MaxIterations = user.MaxIterations
	}
	cfg.ForceConclusionAtMaxIterations = user.ForceConclusionAtMaxIterations
	if user.LLMTimeout > 0 {
		cfg.LLMTimeout = user.LLMTimeout
	}
	if user.MCPToolTimeout > 0 {
		cfg.MCPToolTimeout = user.MCPToolTimeout
	}
	if user.MCPHealthInterval > 0 {
		cfg.MCPHealthInterval = user.MCPHealthInterval
	}
	if user.SummaryMaxTokens > 0 {
		cfg.SummaryMaxTokens = user.SummaryMaxTokens
	}
	return cfg
}

func resolveQueue(user *QueueConfig) *QueueConfig {
	cfg := DefaultQueueConfig()
	if user == nil {
		return cfg
	}
	if user.WorkerCount > 0 {
		cfg.WorkerCount = user.WorkerCount
	}
	if user.MaxConcurrentSessions > 0 {
		cfg.MaxConcurrentSessions = user.MaxConcurrentSessions
	}
	if user.PollInterval > 0 {
		cfg.PollInterval = user.PollInterval
	}
	if user.PollIntervalJitter > 0 {
		cfg.PollIntervalJitter = user.PollIntervalJitter
	}
	if user.HeartbeatInterval > 0 {
		cfg.HeartbeatInterval = user.HeartbeatInterval
	}
	if user.SessionTimeout > 0 {
		cfg.SessionTimeout = user.SessionTimeout
	}
	if user.GracefulShutdownTimeout > 0 {
		cfg.GracefulShutdownTimeout = user.GracefulShutdownTimeout
	}
	if user.OrphanDetectionInterval > 0 {
		cfg.OrphanDetectionInterval = user.OrphanDetectionInterval
	}
	if user.OrphanThreshold > 0 {
		cfg.OrphanThreshold = user.OrphanThreshold
	}
	return cfg
}

func resolveRetention(sys *systemYAML) *RetentionConfig {
	cfg := DefaultRetentionConfig()
	if sys == nil || sys.Retention == nil {
		return cfg
	}
	r := sys.Retention
	if r.SessionRetentionDays > 0 {
		cfg.SessionRetentionDays = r.SessionRetentionDays
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}
	return cfg
}

func resolveGitHub(sys *systemYAML) *GitHubConfig {
	cfg := &GitHubConfig{TokenEnv: "GITHUB_TOKEN"}
	if sys != nil && sys.GitHub != nil && sys.GitHub.TokenEnv != "" {
		cfg.TokenEnv = sys.GitHub.TokenEnv
	}
	return cfg
}

func resolveSlack(sys *systemYAML) *SlackConfig {
	cfg := &SlackConfig{
		TokenEnv:     "SLACK_BOT_TOKEN",
		DashboardURL: "http://localhost:5173",
	}
	if sys == nil {
		return cfg
	}
	if sys.DashboardURL != "" {
		cfg.DashboardURL = sys.DashboardURL
	}
	if sys.Slack == nil {
		return cfg
	}
	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}
	return cfg
}

func resolveRunbooks(sys *systemYAML) *RunbookConfig {
	cfg := &RunbookConfig{
		CacheTTL:       1 * time.Minute,
		AllowedDomains: []string{"github.com", "raw.githubusercontent.com"},
	}
	if sys == nil || sys.Runbooks == nil {
		return cfg
	}
	rb := sys.Runbooks
	if rb.RepoURL != "" {
		cfg.RepoURL = rb.RepoURL
	}
	if rb.CacheTTL != "" {
		if d, err := time.ParseDuration(rb.CacheTTL); err == nil {
			cfg.CacheTTL = d
		} else {
			slog.Warn("Invalid cache_ttl in runbooks config, using default",
				"value", rb.CacheTTL, "error", err)
		}
	}
	if len(rb.AllowedDomains) > 0 {
		cfg.AllowedDomains = rb.AllowedDomains
	}
	return cfg
}
