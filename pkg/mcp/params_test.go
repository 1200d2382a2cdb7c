package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionInput_EmptyAndWhitespace(t *testing.T) {
	for _, input := range []string{"", "   \n  "} {
		result, err := ParseActionInput(input)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, result)
	}
}

func TestParseActionInput_JSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			name:  "object",
			input: `{"namespace": "default", "limit": 10}`,
			want:  map[string]any{"namespace": "default", "limit": float64(10)},
		},
		{
			name:  "nested object",
			input: `{"filter": {"app": "nginx"}, "namespace": "prod"}`,
			want:  map[string]any{"filter": map[string]any{"app": "nginx"}, "namespace": "prod"},
		},
		{
			name:  "array wraps in input",
			input: `["pod1", "pod2"]`,
			want:  map[string]any{"input": []any{"pod1", "pod2"}},
		},
		{
			name:  "string wraps in input",
			input: `"hello world"`,
			want:  map[string]any{"input": "hello world"},
		},
		{
			name:  "number wraps in input",
			input: `42`,
			want:  map[string]any{"input": float64(42)},
		},
		{
			name:  "booleans wrap in input",
			input: `true`,
			want:  map[string]any{"input": true},
		},
		{
			name:  "null wraps in input",
			input: `null`,
			want:  map[string]any{"input": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseActionInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestParseActionInput_YAML(t *testing.T) {
	t.Run("nested list", func(t *testing.T) {
		result, err := ParseActionInput("namespaces:\n  - default\n  - kube-system\nlabel: app=nginx")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"namespaces": []any{"default", "kube-system"},
			"label":      "app=nginx",
		}, result)
	})

	t.Run("nested map", func(t *testing.T) {
		result, err := ParseActionInput("selector:\n  app: nginx\n  env: prod")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"selector": map[string]any{"app": "nginx", "env": "prod"},
		}, result)
	})
}

func TestParseActionInput_KeyValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{"colon separated", "namespace: default", map[string]any{"namespace": "default"}},
		{"equals separated", "namespace=default", map[string]any{"namespace": "default"}},
		{"comma separated", "namespace: default, limit: 10", map[string]any{"namespace": "default", "limit": int64(10)}},
		{"newline separated", "namespace: default\nlimit: 10", map[string]any{"namespace": "default", "limit": int64(10)}},
		{"mixed separators", "namespace: default, verbose=true\nlimit: 5", map[string]any{"namespace": "default", "verbose": true, "limit": int64(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseActionInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestParseActionInput_RawStringFallback(t *testing.T) {
	for _, input := range []string{"get all pods in the default namespace", "default"} {
		result, err := ParseActionInput(input)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"input": input}, result)
	}
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"false", false},
		{"False", false},
		{"null", nil},
		{"none", nil},
		{"None", nil},
		{"42", int64(42)},
		{"-5", int64(-5)},
		{"3.14", 3.14},
		{"NaN", "NaN"}, // non-finite floats stay strings
		{"Inf", "Inf"},
		{"-Inf", "-Inf"},
		{"+Inf", "+Inf"},
		{"hello", "hello"},
		{"  hello  ", "hello"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, coerceValue(tt.input), tt.input)
	}
}

func TestParseActionInput_JSONBeatsKeyValue(t *testing.T) {
	result, err := ParseActionInput(`{"key": "value"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"key": "value"}, result)
}

func TestParseActionInput_FlatKeyValueSkipsYAML(t *testing.T) {
	// Single "key: value" lines go through the key-value parser so numbers
	// and booleans coerce consistently with the comma/equals forms.
	result, err := ParseActionInput("namespace: default")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"namespace": "default"}, result)
}
