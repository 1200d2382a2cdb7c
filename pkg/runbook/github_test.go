package runbook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubClient_DownloadContent(t *testing.T) {
	t.Run("successful download", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# Runbook Content\n\nStep 1: Check pods"))
		}))
		defer server.Close()

		client := githubClientFor(server, "")
		content, err := client.DownloadContent(context.Background(), server.URL+"/org/repo/blob/main/runbook.md")
		require.NoError(t, err)
		assert.Equal(t, "# Runbook Content\n\nStep 1: Check pods", content)
	})

	t.Run("bearer token sent when configured", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte("content"))
		}))
		defer server.Close()

		client := githubClientFor(server, "test-token-123")
		_, err := client.DownloadContent(context.Background(), server.URL+"/file.md")
		require.NoError(t, err)
		assert.Equal(t, "Bearer test-token-123", gotAuth)
	})

	t.Run("no auth header without token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte("content"))
		}))
		defer server.Close()

		client := githubClientFor(server, "")
		_, err := client.DownloadContent(context.Background(), server.URL+"/file.md")
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("non-200 statuses return errors", func(t *testing.T) {
		for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))

			client := githubClientFor(server, "")
			_, err := client.DownloadContent(context.Background(), server.URL+"/file.md")
			server.Close()
			require.Error(t, err)
			assert.Contains(t, err.Error(), strconv.Itoa(status))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("content"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := githubClientFor(server, "")
		_, err := client.DownloadContent(ctx, server.URL+"/file.md")
		require.Error(t, err)
	})
}

func TestGitHubClient_ListMarkdownFiles(t *testing.T) {
	t.Run("flat directory filters to md files", func(t *testing.T) {
		items := []githubContentItem{
			{Name: "k8s.md", Path: "runbooks/k8s.md", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/k8s.md"},
			{Name: "network.md", Path: "runbooks/network.md", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/network.md"},
			{Name: "README.txt", Path: "runbooks/README.txt", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/README.txt"},
		}
		server := contentsAPIServer(t, func(int) []githubContentItem { return items })
		defer server.Close()

		client := githubAPIClientFor(server)
		files, err := client.ListMarkdownFiles(context.Background(), "https://github.com/org/repo/tree/main/runbooks")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://github.com/org/repo/blob/main/runbooks/k8s.md",
			"https://github.com/org/repo/blob/main/runbooks/network.md",
		}, files)
	})

	t.Run("recurses into subdirectories", func(t *testing.T) {
		calls := 0
		server := contentsAPIServer(t, func(call int) []githubContentItem {
			calls = call
			if call == 1 {
				return []githubContentItem{
					{Name: "root.md", Path: "runbooks/root.md", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/root.md"},
					{Name: "subdir", Path: "runbooks/subdir", Type: "dir"},
				}
			}
			return []githubContentItem{
				{Name: "nested.md", Path: "runbooks/subdir/nested.md", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/subdir/nested.md"},
			}
		})
		defer server.Close()

		client := githubAPIClientFor(server)
		files, err := client.ListMarkdownFiles(context.Background(), "https://github.com/org/repo/tree/main/runbooks")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://github.com/org/repo/blob/main/runbooks/root.md",
			"https://github.com/org/repo/blob/main/runbooks/subdir/nested.md",
		}, files)
		assert.Equal(t, 2, calls)
	})

	t.Run("md extension match is case insensitive", func(t *testing.T) {
		items := []githubContentItem{
			{Name: "upper.MD", Path: "runbooks/upper.MD", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/upper.MD"},
			{Name: "mixed.Md", Path: "runbooks/mixed.Md", Type: "file", HTMLURL: "https://github.com/org/repo/blob/main/runbooks/mixed.Md"},
		}
		server := contentsAPIServer(t, func(int) []githubContentItem { return items })
		defer server.Close()

		client := githubAPIClientFor(server)
		files, err := client.ListMarkdownFiles(context.Background(), "https://github.com/org/repo/tree/main/runbooks")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("empty directory", func(t *testing.T) {
		server := contentsAPIServer(t, func(int) []githubContentItem { return []githubContentItem{} })
		defer server.Close()

		client := githubAPIClientFor(server)
		files, err := client.ListMarkdownFiles(context.Background(), "https://github.com/org/repo/tree/main/runbooks")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("API error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := githubAPIClientFor(server)
		_, err := client.ListMarkdownFiles(context.Background(), "https://github.com/org/repo/tree/main/runbooks")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("non-repo URL rejected", func(t *testing.T) {
		client := NewGitHubClient("")
		_, err := client.ListMarkdownFiles(context.Background(), "https://not-github.com/repo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse repo URL")
	})
}

// contentsAPIServer serves Contents API JSON, handing the responder a
// 1-based call counter so nested directory listings can differ per request.
func contentsAPIServer(t *testing.T, respond func(call int) []githubContentItem) *httptest.Server {
	t.Helper()
	call := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		call++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(respond(call))
	}))
}

// githubClientFor returns a client whose raw downloads hit the test server
// directly.
func githubClientFor(server *httptest.Server, token string) *GitHubClient {
	client := NewGitHubClient(token)
	client.httpClient = server.Client()
	return client
}

// githubAPIClientFor returns a client whose api.github.com and
// raw.githubusercontent.com requests are rerouted to the test server.
func githubAPIClientFor(server *httptest.Server) *GitHubClient {
	client := NewGitHubClient("")
	client.httpClient = &http.Client{Transport: &rerouteTransport{server: server}}
	return client
}

type rerouteTransport struct {
	server *httptest.Server
}

func (t *rerouteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host == "api.github.com" || req.URL.Host == "raw.githubusercontent.com" {
		parsed, _ := url.Parse(t.server.URL)
		req.URL.Scheme = parsed.Scheme
		req.URL.Host = parsed.Host
	}
	return http.DefaultTransport.RoundTrip(req)
}
