package runbook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

func TestService_Resolve(t *testing.T) {
	t.Run("URL provided fetches content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# Fetched Runbook"))
		}))
		defer server.Close()

		svc := serviceFor(t, server, nil, "default content")
		content, err := svc.Resolve(context.Background(), server.URL+"/runbook.md")
		require.NoError(t, err)
		assert.Equal(t, "# Fetched Runbook", content)
	})

	t.Run("empty URL returns default content", func(t *testing.T) {
		svc := NewService(nil, "", "# Default Runbook")
		content, err := svc.Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "# Default Runbook", content)
	})

	t.Run("fetch error surfaces for caller to handle", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := serviceFor(t, server, nil, "default content")
		_, err := svc.Resolve(context.Background(), server.URL+"/runbook.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch alert runbook")
	})

	t.Run("disallowed domain rejected", func(t *testing.T) {
		svc := NewService(&config.RunbookConfig{AllowedDomains: []string{"github.com"}}, "", "default")

		_, err := svc.Resolve(context.Background(), "https://evil.com/runbook.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in allowed list")
	})

	t.Run("second resolve is a cache hit", func(t *testing.T) {
		fetches := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fetches++
			_, _ = w.Write([]byte("# Cached Content"))
		}))
		defer server.Close()

		svc := serviceFor(t, server, nil, "default")

		for i := 0; i < 2; i++ {
			content, err := svc.Resolve(context.Background(), server.URL+"/runbook.md")
			require.NoError(t, err)
			assert.Equal(t, "# Cached Content", content)
		}
		assert.Equal(t, 1, fetches)
	})
}

func TestService_ListRunbooks(t *testing.T) {
	repoCfg := &config.RunbookConfig{RepoURL: "https://github.com/org/repo/tree/main/runbooks"}

	t.Run("returns files from configured repo", func(t *testing.T) {
		items := []githubContentItem{
			{Name: "k8s.md", Path: "runbooks/k8s.md", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/k8s.md"},
			{Name: "net.md", Path: "runbooks/net.md", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/net.md"},
		}
		server := contentsAPIServer(t, func(int) []githubContentItem { return items })
		defer server.Close()

		svc := serviceFor(t, server, repoCfg, "default")
		files, err := svc.ListRunbooks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://github.com/org/repo/blob/main/runbooks/k8s.md",
			"https://github.com/org/repo/blob/main/runbooks/net.md",
		}, files)
	})

	t.Run("no repo configured returns empty slice", func(t *testing.T) {
		svc := NewService(nil, "", "default")
		files, err := svc.ListRunbooks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{}, files)

		svc = NewService(&config.RunbookConfig{RepoURL: ""}, "", "default")
		files, err = svc.ListRunbooks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{}, files)
	})

	t.Run("API failure surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		svc := serviceFor(t, server, repoCfg, "default")
		_, err := svc.ListRunbooks(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list runbooks")
	})

	t.Run("second listing is a cache hit", func(t *testing.T) {
		fetches := 0
		items := []githubContentItem{
			{Name: "k8s.md", Path: "runbooks/k8s.md", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/k8s.md"},
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fetches++
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(items)
		}))
		defer server.Close()

		svc := serviceFor(t, server, repoCfg, "default")

		for i := 0; i < 2; i++ {
			files, err := svc.ListRunbooks(context.Background())
			require.NoError(t, err)
			assert.Len(t, files, 1)
		}
		assert.Equal(t, 1, fetches)
	})
}

// serviceFor builds a Service routing all GitHub traffic through the test
// server. A nil cfg means no domain restrictions and a short cache TTL.
func serviceFor(t *testing.T, server *httptest.Server, cfg *config.RunbookConfig, defaultRunbook string) *Service {
	t.Helper()
	if cfg == nil {
		cfg = &config.RunbookConfig{CacheTTL: 1 * time.Minute}
	}
	svc := NewService(cfg, "", defaultRunbook)
	svc.OverrideHTTPClientForTest(&http.Client{Transport: &rerouteTransport{server: server}})
	return svc
}
