// Package masking removes sensitive substrings from MCP tool responses
// before they are persisted or shown to the LLM. Masking is regex-based:
// each MCP server's config names pattern groups and custom patterns, and
// every string anywhere in the response structure is run through the
// resolved set.
package masking

import (
	"fmt"
	"log/slog"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

// MaskedErrorValue replaces the result when masking itself fails. Plaintext
// must never leak because a regex or traversal blew up.
const MaskedErrorValue = "***MASKED_ERROR***"

// MaskingError wraps a failure inside the masking service. It is caught at
// the service boundary and surfaces as a fail-safe masked response, never as
// an error to the caller.
type MaskingError struct {
	ServerID string
	Err      error
}

func (e *MaskingError) Error() string {
	return fmt.Sprintf("masking failed for server %s: %v", e.ServerID, e.Err)
}

func (e *MaskingError) Unwrap() error { return e.Err }

// AlertMaskingConfig holds alert payload masking settings.
type AlertMaskingConfig struct {
	Enabled      bool
	PatternGroup string
}

// MaskingService applies data masking to MCP tool results and alert payloads.
// Created once at application startup (singleton). Thread-safe and stateless
// aside from compiled patterns.
type MaskingService struct {
	registry             *config.MCPServerRegistry
	patterns             map[string]*CompiledPattern // Built-in + custom compiled patterns
	serverCustomPatterns map[string][]string         // serverID → custom pattern keys
	alertMasking         AlertMaskingConfig
}

// NewMaskingService creates a masking service with compiled patterns.
// All patterns are compiled eagerly at creation time. Invalid patterns are
// logged and skipped.
func NewMaskingService(registry *config.MCPServerRegistry, alertCfg AlertMaskingConfig) *MaskingService {
	s := &MaskingService{
		registry:             registry,
		patterns:             make(map[string]*CompiledPattern),
		serverCustomPatterns: make(map[string][]string),
		alertMasking:         alertCfg,
	}

	s.compileBuiltinPatterns()
	s.compileCustomPatterns()

	slog.Info("Masking service initialized",
		"builtin_patterns", len(builtinPatterns),
		"compiled_patterns", len(s.patterns),
		"alert_masking_enabled", alertCfg.Enabled)

	return s
}

// MaskResponse applies server-specific masking to a structured MCP tool
// response, traversing maps, lists, and strings recursively. Non-string
// scalars pass through unchanged.
//
// Without a masking config, or with enabled=false, the response is returned
// unchanged. On any failure during masking, a fail-safe response is returned
// whose result is replaced with MaskedErrorValue.
func (s *MaskingService) MaskResponse(response map[string]interface{}, serverID string) map[string]interface{} {
	if response == nil {
		return nil
	}

	serverCfg, err := s.registry.Get(serverID)
	if err != nil || serverCfg.DataMasking == nil || !serverCfg.DataMasking.Enabled {
		return response // No masking configured
	}

	resolved := s.resolvePatterns(serverCfg.DataMasking, serverID)
	if len(resolved) == 0 {
		return response
	}

	masked, err := s.maskStructured(response, resolved)
	if err != nil {
		merr := &MaskingError{ServerID: serverID, Err: err}
		slog.Error("Masking failed, returning fail-safe response", "error", merr)
		return failSafeResponse(response)
	}
	return masked
}

// MaskString applies server-specific masking to a plain string, e.g. an
// error message produced by a tool call.
func (s *MaskingService) MaskString(content, serverID string) string {
	if content == "" {
		return content
	}

	serverCfg, err := s.registry.Get(serverID)
	if err != nil || serverCfg.DataMasking == nil || !serverCfg.DataMasking.Enabled {
		return content
	}

	resolved := s.resolvePatterns(serverCfg.DataMasking, serverID)
	masked, err := applyPatterns(content, resolved)
	if err != nil {
		slog.Error("String masking failed, returning fail-safe value",
			"server", serverID, "error", err)
		return MaskedErrorValue
	}
	return masked
}

// MaskAlertData applies masking to alert payload data using the configured
// pattern group. On failure the original data is returned: alert payloads
// come from the caller, who already holds the plaintext.
func (s *MaskingService) MaskAlertData(data string) string {
	if !s.alertMasking.Enabled || data == "" {
		return data
	}

	resolved := s.resolveGroup(s.alertMasking.PatternGroup)
	if len(resolved) == 0 {
		return data
	}

	masked, err := applyPatterns(data, resolved)
	if err != nil {
		slog.Error("Alert masking failed, continuing with unmasked data", "error", err)
		return data
	}
	return masked
}

// maskStructured recursively masks every string in a map. The input is not
// mutated; a masked copy is returned.
func (s *MaskingService) maskStructured(response map[string]interface{}, patterns []*CompiledPattern) (result map[string]interface{}, err error) {
	// A pathological regex or deeply recursive structure must not take the
	// tool call down with it; recover into the fail-safe path.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("panic during masking: %v", r)
		}
	}()

	maskedValue, err := maskValue(response, patterns)
	if err != nil {
		return nil, err
	}
	masked, ok := maskedValue.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("masking changed response shape")
	}
	return masked, nil
}

// maskValue walks an arbitrary JSON-shaped value and masks strings.
func maskValue(value interface{}, patterns []*CompiledPattern) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return applyPatterns(v, patterns)
	case map[string]interface{}:
		masked := make(map[string]interface{}, len(v))
		for key, val := range v {
			mv, err := maskValue(val, patterns)
			if err != nil {
				return nil, err
			}
			masked[key] = mv
		}
		return masked, nil
	case []interface{}:
		masked := make([]interface{}, len(v))
		for i, val := range v {
			mv, err := maskValue(val, patterns)
			if err != nil {
				return nil, err
			}
			masked[i] = mv
		}
		return masked, nil
	default:
		// Non-string scalars (numbers, bools, nil) pass through unchanged.
		return value, nil
	}
}

// applyPatterns runs the resolved patterns over a string in order.
func applyPatterns(content string, patterns []*CompiledPattern) (masked string, err error) {
	defer func() {
		if r := recover(); r != nil {
			masked = ""
			err = fmt.Errorf("panic applying pattern: %v", r)
		}
	}()

	masked = content
	for _, pattern := range patterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}
	return masked, nil
}

// failSafeResponse replaces every top-level value with the masked-error
// marker, preserving the response's keys so callers can still route it.
func failSafeResponse(response map[string]interface{}) map[string]interface{} {
	safe := make(map[string]interface{}, len(response))
	for key := range response {
		safe[key] = MaskedErrorValue
	}
	if len(safe) == 0 {
		safe["result"] = MaskedErrorValue
	}
	return safe
}
