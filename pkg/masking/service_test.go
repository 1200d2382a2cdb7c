package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

func boolPtr(b bool) *bool { return &b }

func newTestService(servers map[string]config.MCPServerConfig, alertCfg AlertMaskingConfig) *MaskingService {
	return NewMaskingService(config.NewMCPServerRegistry(servers), alertCfg)
}

func serverWithMasking(masking *config.MaskingConfig) config.MCPServerConfig {
	return config.MCPServerConfig{
		Enabled:     boolPtr(true),
		DataMasking: masking,
	}
}

func TestMaskResponse_Disabled(t *testing.T) {
	tests := []struct {
		name    string
		masking *config.MaskingConfig
	}{
		{
			name:    "no masking config",
			masking: nil,
		},
		{
			name: "masking disabled",
			masking: &config.MaskingConfig{
				Enabled:       false,
				PatternGroups: []string{"security"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(map[string]config.MCPServerConfig{
				"test-server": serverWithMasking(tt.masking),
			}, AlertMaskingConfig{})

			response := map[string]interface{}{
				"result": "api_key: supersecretvalue123",
				"count":  float64(3),
			}

			masked := svc.MaskResponse(response, "test-server")
			assert.Equal(t, response, masked)
			// Disabled masking returns the input untouched, not a copy.
			assert.Equal(t, "api_key: supersecretvalue123", masked["result"])
		})
	}
}

func TestMaskResponse_UnknownServer(t *testing.T) {
	svc := newTestService(map[string]config.MCPServerConfig{}, AlertMaskingConfig{})

	response := map[string]interface{}{"result": "password=hunter2secret"}
	masked := svc.MaskResponse(response, "missing-server")
	assert.Equal(t, response, masked)
}

func TestMaskResponse_BasicGroup(t *testing.T) {
	svc := newTestService(map[string]config.MCPServerConfig{
		"test-server": serverWithMasking(&config.MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"basic"},
		}),
	}, AlertMaskingConfig{})

	response := map[string]interface{}{
		"result": "api_key: sk-abc123def456 password=hunter2secret",
	}

	masked := svc.MaskResponse(response, "test-server")
	result := masked["result"].(string)
	assert.NotContains(t, result, "sk-abc123def456")
	assert.NotContains(t, result, "hunter2secret")
	assert.Contains(t, result, "***MASKED_API_KEY***")
	assert.Contains(t, result, "***MASKED_PASSWORD***")
}

func TestMaskResponse_SecurityGroup(t *testing.T) {
	pem := "-----BEGIN CERTIFICATE-----\nMIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8A\n-----END CERTIFICATE-----"

	svc := newTestService(map[string]config.MCPServerConfig{
		"test-server": serverWithMasking(&config.MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"security"},
		}),
	}, AlertMaskingConfig{})

	tests := []struct {
		name       string
		input      string
		notContain string
		contain    string
	}{
		{
			name:       "bearer token",
			input:      "authorization: Bearer0abc123def456ghi",
			notContain: "Bearer0abc123def456ghi",
			contain:    "***MASKED_TOKEN***",
		},
		{
			name:       "pem certificate",
			input:      "cert dump:\n" + pem,
			notContain: "MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8A",
			contain:    "***MASKED_CERTIFICATE***",
		},
		{
			name:       "api key",
			input:      "apikey=verysecretkey99",
			notContain: "verysecretkey99",
			contain:    "***MASKED_API_KEY***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masked := svc.MaskResponse(map[string]interface{}{"result": tt.input}, "test-server")
			result := masked["result"].(string)
			assert.NotContains(t, result, tt.notContain)
			assert.Contains(t, result, tt.contain)
		})
	}
}

func TestMaskResponse_KubernetesGroup(t *testing.T) {
	svc := newTestService(map[string]config.MCPServerConfig{
		"kubernetes-server": serverWithMasking(&config.MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"kubernetes"},
		}),
	}, AlertMaskingConfig{})

	t.Run("yaml secret data section", func(t *testing.T) {
		manifest := "apiVersion: v1\nkind: Secret\nmetadata:\n  name: db-creds\ndata:\n  username: YWRtaW4=\n  password: aHVudGVyMg==\n"
		masked := svc.MaskResponse(map[string]interface{}{"result": manifest}, "kubernetes-server")
		result := masked["result"].(string)
		assert.NotContains(t, result, "YWRtaW4=")
		assert.NotContains(t, result, "aHVudGVyMg==")
		assert.Contains(t, result, "***MASKED_KUBERNETES_DATA***")
		assert.Contains(t, result, "kind: Secret")
	})

	t.Run("json stringData object", func(t *testing.T) {
		doc := `{"kind":"Secret","stringData": {"token": "abcd1234efgh"}}`
		masked := svc.MaskResponse(map[string]interface{}{"result": doc}, "kubernetes-server")
		result := masked["result"].(string)
		assert.NotContains(t, result, "abcd1234efgh")
		assert.Contains(t, result, "***MASKED_KUBERNETES_DATA***")
	})

	t.Run("short base64 fragments survive", func(t *testing.T) {
		// Image digests and resource UIDs look base64-ish and must not be
		// destroyed by the kubernetes group.
		output := "image: registry.io/app@sha256:ab12cd34\nuid: 9f8e7d6c"
		masked := svc.MaskResponse(map[string]interface{}{"result": output}, "kubernetes-server")
		assert.Equal(t, output, masked["result"])
	})
}

func TestMaskResponse_NestedStructures(t *testing.T) {
	svc := newTestService(map[string]config.MCPServerConfig{
		"test-server": serverWithMasking(&config.MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"basic"},
		}),
	}, AlertMaskingConfig{})

	response := map[string]interface{}{
		"result": map[string]interface{}{
			"items": []interface{}{
				"password=topsecret1",
				map[string]interface{}{"detail": "api_key: sk-nested-secret-1"},
				float64(42),
				true,
				nil,
			},
		},
		"duration_ms": float64(117),
	}

	masked := svc.MaskResponse(response, "test-server")

	items := masked["result"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 5)
	assert.NotContains(t, items[0].(string), "topsecret1")
	assert.NotContains(t, items[1].(map[string]interface{})["detail"].(string), "sk-nested-secret-1")
	assert.Equal(t, float64(42), items[2])
	assert.Equal(t, true, items[3])
	assert.Nil(t, items[4])
	assert.Equal(t, float64(117), masked["duration_ms"])

	// Original response is not mutated.
	origItems := response["result"].(map[string]interface{})["items"].([]interface{})
	assert.Equal(t, "password=topsecret1", origItems[0])
}

func TestMaskResponse_CustomPatterns(t *testing.T) {
	svc := newTestService(map[string]config.MCPServerConfig{
		"server-a": serverWithMasking(&config.MaskingConfig{
			Enabled: true,
			CustomPatterns: []config.MaskingPattern{
				{Pattern: `internal-id-\d+`, Replacement: "***MASKED_ID***"},
			},
		}),
		"server-b": serverWithMasking(&config.MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"basic"},
		}),
	}, AlertMaskingConfig{})

	// Custom pattern applies to its own server.
	masked := svc.MaskResponse(map[string]interface{}{"result": "found internal-id-12345"}, "server-a")
	assert.Equal(t, "found ***MASKED_ID***", masked["result"])

	// Another server's custom pattern does not leak across servers.
	masked = svc.MaskResponse(map[string]interface{}{"result": "found internal-id-12345"}, "server-b")
	assert.Equal(t, "found internal-id-12345", masked["result"])
}

func TestMaskResponse_InvalidCustomPatternSkipped(t *testing.T) {
	svc := newTestService(map[string]config.MCPServerConfig{
		"test-server": serverWithMasking(&config.MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"basic"},
			CustomPatterns: []config.MaskingPattern{
				{Pattern: `([unclosed`, Replacement: "x"},
			},
		}),
	}, AlertMaskingConfig{})

	// The invalid custom pattern is skipped; group patterns still apply.
	masked := svc.MaskResponse(map[string]interface{}{"result": "password=stillsecret"}, "test-server")
	assert.NotContains(t, masked["result"].(string), "stillsecret")
}

func TestMaskResponse_NamedPatterns(t *testing.T) {
	svc := newTestService(map[string]config.MCPServerConfig{
		"test-server": serverWithMasking(&config.MaskingConfig{
			Enabled:  true,
			Patterns: []string{"token"},
		}),
	}, AlertMaskingConfig{})

	masked := svc.MaskResponse(map[string]interface{}{
		"result": "token=abcdef123456 password=untouchedvalue",
	}, "test-server")
	result := masked["result"].(string)
	assert.Contains(t, result, "***MASKED_TOKEN***")
	// Only the named pattern applies; password was not requested.
	assert.Contains(t, result, "untouchedvalue")
}

func TestMaskString(t *testing.T) {
	svc := newTestService(map[string]config.MCPServerConfig{
		"test-server": serverWithMasking(&config.MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"basic"},
		}),
	}, AlertMaskingConfig{})

	masked := svc.MaskString("tool failed: password=oops123", "test-server")
	assert.NotContains(t, masked, "oops123")
	assert.Contains(t, masked, "***MASKED_PASSWORD***")

	assert.Equal(t, "", svc.MaskString("", "test-server"))
	assert.Equal(t, "plain text", svc.MaskString("plain text", "unknown-server"))
}

func TestMaskAlertData(t *testing.T) {
	t.Run("enabled with security group", func(t *testing.T) {
		svc := newTestService(nil, AlertMaskingConfig{
			Enabled:      true,
			PatternGroup: "security",
		})
		masked := svc.MaskAlertData("alert payload api_key: sk-alert-secret-1")
		assert.NotContains(t, masked, "sk-alert-secret-1")
	})

	t.Run("disabled passes through", func(t *testing.T) {
		svc := newTestService(nil, AlertMaskingConfig{Enabled: false})
		data := "api_key: sk-alert-secret-1"
		assert.Equal(t, data, svc.MaskAlertData(data))
	})

	t.Run("unknown group passes through", func(t *testing.T) {
		svc := newTestService(nil, AlertMaskingConfig{Enabled: true, PatternGroup: "nonexistent"})
		data := "api_key: sk-alert-secret-1"
		assert.Equal(t, data, svc.MaskAlertData(data))
	})
}

func TestFailSafeResponse(t *testing.T) {
	safe := failSafeResponse(map[string]interface{}{
		"result":  "secret stuff",
		"context": "more secrets",
	})
	assert.Equal(t, MaskedErrorValue, safe["result"])
	assert.Equal(t, MaskedErrorValue, safe["context"])

	empty := failSafeResponse(map[string]interface{}{})
	assert.Equal(t, MaskedErrorValue, empty["result"])
}

func TestMaskingError(t *testing.T) {
	err := &MaskingError{ServerID: "test-server", Err: assert.AnError}
	assert.Contains(t, err.Error(), "test-server")
	assert.ErrorIs(t, err, assert.AnError)
}
