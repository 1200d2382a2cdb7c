package runbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToRawURL(t *testing.T) {
	cases := map[string]struct{ in, want string }{
		"blob URL": {
			"https://github.com/org/repo/blob/main/runbooks/k8s.md",
			"https://raw.githubusercontent.com/org/repo/refs/heads/main/runbooks/k8s.md",
		},
		"tree URL": {
			"https://github.com/org/repo/tree/main/runbooks/k8s.md",
			"https://raw.githubusercontent.com/org/repo/refs/heads/main/runbooks/k8s.md",
		},
		"nested path": {
			"https://github.com/myorg/docs/blob/develop/sre/runbooks/network.md",
			"https://raw.githubusercontent.com/myorg/docs/refs/heads/develop/sre/runbooks/network.md",
		},
		"www prefix": {
			"https://www.github.com/org/repo/blob/main/runbook.md",
			"https://raw.githubusercontent.com/org/repo/refs/heads/main/runbook.md",
		},
		"already raw passes through": {
			"https://raw.githubusercontent.com/org/repo/refs/heads/main/runbooks/k8s.md",
			"https://raw.githubusercontent.com/org/repo/refs/heads/main/runbooks/k8s.md",
		},
		"non-GitHub passes through": {
			"https://example.com/some/path",
			"https://example.com/some/path",
		},
		"no blob or tree segment passes through": {
			"https://github.com/org/repo",
			"https://github.com/org/repo",
		},
		"unparseable passes through": {"://not-a-url", "://not-a-url"},
		"empty passes through":       {"", ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ConvertToRawURL(tc.in))
		})
	}
}

func TestParseRepoURL(t *testing.T) {
	t.Run("tree URL with path", func(t *testing.T) {
		got, err := ParseRepoURL("https://github.com/org/repo/tree/main/runbooks")
		require.NoError(t, err)
		assert.Equal(t, &RepoURLParts{Owner: "org", Repo: "repo", Ref: "main", Path: "runbooks"}, got)
	})

	t.Run("blob URL with nested path", func(t *testing.T) {
		got, err := ParseRepoURL("https://github.com/myorg/docs/blob/develop/sre/runbooks/network.md")
		require.NoError(t, err)
		assert.Equal(t, &RepoURLParts{Owner: "myorg", Repo: "docs", Ref: "develop", Path: "sre/runbooks/network.md"}, got)
	})

	t.Run("no trailing path", func(t *testing.T) {
		got, err := ParseRepoURL("https://github.com/org/repo/tree/main")
		require.NoError(t, err)
		assert.Equal(t, &RepoURLParts{Owner: "org", Repo: "repo", Ref: "main", Path: ""}, got)
	})

	t.Run("errors", func(t *testing.T) {
		for url, wantMsg := range map[string]string{
			"https://gitlab.com/org/repo/tree/main/runbooks": "not a GitHub URL",
			"https://github.com/org/repo":                    "does not match",
			"://broken":                                      "malformed URL",
		} {
			_, err := ParseRepoURL(url)
			require.Error(t, err, url)
			assert.Contains(t, err.Error(), wantMsg)
		}
	})
}

func TestValidateRunbookURL(t *testing.T) {
	defaultDomains := []string{"github.com", "raw.githubusercontent.com"}

	t.Run("allowed domains and schemes", func(t *testing.T) {
		for _, url := range []string{
			"https://github.com/org/repo/blob/main/runbook.md",
			"https://raw.githubusercontent.com/org/repo/refs/heads/main/runbook.md",
			"http://github.com/org/repo/blob/main/runbook.md",
			"https://www.github.com/org/repo/blob/main/runbook.md",
		} {
			assert.NoError(t, ValidateRunbookURL(url, defaultDomains), url)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		for url, wantMsg := range map[string]string{
			"ftp://github.com/org/repo/blob/main/runbook.md": "invalid scheme",
			"file:///etc/passwd":         "invalid scheme",
			"https://evil.com/malicious": "not in allowed list",
			"://broken":                  "malformed URL",
		} {
			err := ValidateRunbookURL(url, defaultDomains)
			require.Error(t, err, url)
			assert.Contains(t, err.Error(), wantMsg)
		}
	})

	t.Run("empty allowlist admits any domain", func(t *testing.T) {
		assert.NoError(t, ValidateRunbookURL("https://any-domain.com/path", []string{}))
		assert.NoError(t, ValidateRunbookURL("https://any-domain.com/path", nil))
	})
}
