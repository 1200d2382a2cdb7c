package runbook

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// RepoURLParts holds the parsed components of a GitHub repository URL.
type RepoURLParts struct {
	Owner string
	Repo  string
	Ref   string
	Path  string
}

// blobTreePath matches the path portion of a GitHub blob or tree URL:
// /{owner}/{repo}/{blob|tree}/{ref}/{path...}
var blobTreePath = regexp.MustCompile(`^/([^/]+)/([^/]+)/(blob|tree)/([^/]+)(?:/(.*))?$`)

func isGitHubHost(host string) bool {
	return host == "github.com" || host == "www.github.com"
}

// ConvertToRawURL rewrites a GitHub blob or tree URL to its
// raw.githubusercontent.com equivalent. URLs that are already raw, are not
// GitHub, or do not parse are returned unchanged.
func ConvertToRawURL(githubURL string) string {
	parsed, err := url.Parse(githubURL)
	if err != nil || parsed.Host == "raw.githubusercontent.com" || !isGitHubHost(parsed.Host) {
		return githubURL
	}

	m := blobTreePath.FindStringSubmatch(parsed.Path)
	if m == nil {
		return githubURL
	}

	owner, repo, ref, path := m[1], m[2], m[4], m[5]
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/refs/heads/%s/%s", owner, repo, ref, path)
}

// ParseRepoURL splits a GitHub tree or blob URL into owner, repo, ref,
// and path within the repository.
func ParseRepoURL(rawURL string) (*RepoURLParts, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("malformed URL: %w", err)
	}
	if !isGitHubHost(parsed.Host) {
		return nil, fmt.Errorf("not a GitHub URL: %s", parsed.Host)
	}

	m := blobTreePath.FindStringSubmatch(parsed.Path)
	if m == nil {
		return nil, fmt.Errorf("URL does not match GitHub blob/tree pattern: %s", parsed.Path)
	}

	return &RepoURLParts{Owner: m[1], Repo: m[2], Ref: m[4], Path: m[5]}, nil
}

// ValidateRunbookURL checks the scheme and, when an allowlist is configured,
// the domain of a runbook URL. An empty allowlist admits any domain.
func ValidateRunbookURL(rawURL string, allowedDomains []string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}

	if len(allowedDomains) == 0 {
		return nil
	}

	host := strings.ToLower(parsed.Hostname())
	for _, domain := range allowedDomains {
		if host == domain || host == "www."+domain {
			return nil
		}
	}
	return fmt.Errorf("domain %q not in allowed list", host)
}
