package report

import (
	"fmt"
	"os"
	"strings"
)

// DetectProvider identifies the hosting platform for a remote URL.
// Returns "github" or "gitlab".
func DetectProvider(remoteURL string) (string, error) {
	url := strings.ToLower(remoteURL)

	if strings.Contains(url, "github.com") {
		return "github", nil
	}
	if strings.Contains(url, "gitlab") {
		return "gitlab", nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownProvider, remoteURL)
}

// ProviderFromEnv creates a provider for the remote URL using a token from
// the environment.
//
// Environment variables checked:
//   - GITHUB_TOKEN for GitHub
//   - GITLAB_TOKEN for GitLab
//   - GIT_TOKEN as fallback for either
func ProviderFromEnv(remoteURL string) (Provider, error) {
	platform, err := DetectProvider(remoteURL)
	if err != nil {
		return nil, err
	}

	switch platform {
	case "github":
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			token = os.Getenv("GIT_TOKEN")
		}
		if token == "" {
			return nil, fmt.Errorf("%w: set GITHUB_TOKEN or GIT_TOKEN", ErrNoToken)
		}
		return NewGitHubProviderFromURL(token, remoteURL)

	case "gitlab":
		token := os.Getenv("GITLAB_TOKEN")
		if token == "" {
			token = os.Getenv("GIT_TOKEN")
		}
		if token == "" {
			return nil, fmt.Errorf("%w: set GITLAB_TOKEN or GIT_TOKEN", ErrNoToken)
		}
		return NewGitLabProviderFromURL(token, remoteURL)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, platform)
	}
}

// ProviderFromToken creates a provider for the remote URL with an explicit
// token. Use this when the token comes from configuration rather than the
// environment.
func ProviderFromToken(remoteURL, token string) (Provider, error) {
	platform, err := DetectProvider(remoteURL)
	if err != nil {
		return nil, err
	}

	switch platform {
	case "github":
		return NewGitHubProviderFromURL(token, remoteURL)
	case "gitlab":
		return NewGitLabProviderFromURL(token, remoteURL)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, platform)
	}
}
