package masking

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatternDef is a built-in pattern before compilation.
type builtinPatternDef struct {
	pattern     string
	replacement string
	description string
}

// Built-in masking patterns. Replacements keep the matched key (capture
// group 1) visible so operators can tell what was masked.
var builtinPatterns = map[string]builtinPatternDef{
	"api_key": {
		pattern:     `(?i)(api[_-]?key|apikey)['"]?\s*[:=]\s*['"]?([A-Za-z0-9_\-.]{8,})['"]?`,
		replacement: `${1}: ***MASKED_API_KEY***`,
		description: "API key assignments (api_key: xxx, apikey=xxx)",
	},
	"password": {
		pattern:     `(?i)(password|passwd|pwd)['"]?\s*[:=]\s*['"]?([^\s'"]+)['"]?`,
		replacement: `${1}: ***MASKED_PASSWORD***`,
		description: "Password assignments in key:value or key=value form",
	},
	"certificate": {
		pattern:     `-----BEGIN [A-Z ]*(?:CERTIFICATE|PRIVATE KEY)-----[\s\S]*?-----END [A-Z ]*(?:CERTIFICATE|PRIVATE KEY)-----`,
		replacement: `***MASKED_CERTIFICATE***`,
		description: "PEM certificate and private key blocks",
	},
	"token": {
		pattern:     `(?i)\b(token|bearer|authorization)['"]?\s*[:=]\s*['"]?([A-Za-z0-9_\-.=]{8,})['"]?`,
		replacement: `${1}: ***MASKED_TOKEN***`,
		description: "Bearer and access token assignments",
	},
	"kubernetes_data_section": {
		pattern:     `(?m)^(\s*)data:\s*\n(?:\s+[\w.\-]+:\s*[^\n]*\n?)+`,
		replacement: "${1}data:\n${1}  ***MASKED_KUBERNETES_DATA***\n",
		description: "YAML data: sections of Kubernetes Secret manifests",
	},
	"kubernetes_stringdata_json": {
		pattern:     `"(data|stringData)"\s*:\s*\{[^{}]*\}`,
		replacement: `"${1}": {"masked": "***MASKED_KUBERNETES_DATA***"}`,
		description: "JSON data/stringData objects of Kubernetes Secret manifests",
	},
}

// patternGroups maps group names to the built-in patterns they expand to.
//
// The kubernetes group intentionally has no generic short-base64 pattern:
// base64 fragments shorter than a Secret value are overwhelmingly innocuous
// (image digests, resource UIDs) and masking them destroys tool output.
var patternGroups = map[string][]string{
	"basic":    {"api_key", "password"},
	"security": {"api_key", "password", "certificate", "token"},
	"kubernetes": {
		"kubernetes_data_section",
		"kubernetes_stringdata_json",
		"api_key",
		"password",
	},
}

// compileBuiltinPatterns compiles all built-in regex patterns.
// Invalid patterns are logged and skipped.
func (s *MaskingService) compileBuiltinPatterns() {
	for name, def := range builtinPatterns {
		compiled, err := regexp.Compile(def.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: def.replacement,
			Description: def.description,
		}
	}
}

// compileCustomPatterns compiles custom patterns from all MCP server configs.
// Custom patterns are keyed as "custom:{serverID}:{index}" to avoid collisions.
func (s *MaskingService) compileCustomPatterns() {
	for serverID, serverCfg := range s.registry.GetAll() {
		if serverCfg.DataMasking == nil || !serverCfg.DataMasking.Enabled {
			continue
		}
		for i, pattern := range serverCfg.DataMasking.CustomPatterns {
			name := fmt.Sprintf("custom:%s:%d", serverID, i)
			compiled, err := regexp.Compile(pattern.Pattern)
			if err != nil {
				slog.Error("Failed to compile custom masking pattern, skipping",
					"pattern", name, "server", serverID, "error", err)
				continue
			}
			s.patterns[name] = &CompiledPattern{
				Name:        name,
				Regex:       compiled,
				Replacement: pattern.Replacement,
				Description: pattern.Description,
			}
			// Track which custom patterns belong to which server
			s.serverCustomPatterns[serverID] = append(s.serverCustomPatterns[serverID], name)
		}
	}
}

// resolvePatterns expands a MaskingConfig into a deduplicated, ordered
// pattern list: group patterns first, then individually named patterns,
// then the server's custom patterns.
func (s *MaskingService) resolvePatterns(cfg *config.MaskingConfig, serverID string) []*CompiledPattern {
	seen := make(map[string]bool)
	var resolved []*CompiledPattern

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if cp, ok := s.patterns[name]; ok {
			resolved = append(resolved, cp)
		}
	}

	for _, groupName := range cfg.PatternGroups {
		for _, name := range patternGroups[groupName] {
			add(name)
		}
	}
	for _, name := range cfg.Patterns {
		add(name)
	}
	if serverID != "" {
		for _, name := range s.serverCustomPatterns[serverID] {
			add(name)
		}
	}

	return resolved
}

// resolveGroup resolves a single pattern group name.
func (s *MaskingService) resolveGroup(groupName string) []*CompiledPattern {
	var resolved []*CompiledPattern
	for _, name := range patternGroups[groupName] {
		if cp, ok := s.patterns[name]; ok {
			resolved = append(resolved, cp)
		}
	}
	return resolved
}
