package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/randalmurphal/confstack/repo"
)

// GitHubProvider fetches repository metadata from GitHub.
type GitHubProvider struct {
	client *github.Client
	owner  string
	name   string
}

// NewGitHubProvider creates a GitHub provider for owner/name.
// token is a personal access token or GitHub App installation token.
func NewGitHubProvider(token, owner, name string) (*GitHubProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}
	if owner == "" || name == "" {
		return nil, fmt.Errorf("owner and name are required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &GitHubProvider{
		client: github.NewClient(tc),
		owner:  owner,
		name:   name,
	}, nil
}

// NewGitHubProviderFromURL creates a GitHub provider from a remote URL.
// Example: "https://github.com/randalmurphal/confstack.git"
func NewGitHubProviderFromURL(token, remoteURL string) (*GitHubProvider, error) {
	owner, name, err := repo.ParseOwnerName(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote URL: %w", err)
	}
	return NewGitHubProvider(token, owner, name)
}

// Fetch retrieves the repository's metadata.
func (p *GitHubProvider) Fetch(ctx context.Context) (*Metadata, error) {
	r, resp, err := p.client.Repositories.Get(ctx, p.owner, p.name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrRepoNotFound
		}
		return nil, fmt.Errorf("fetch repository: %w", err)
	}

	return &Metadata{
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		DefaultBranch: r.GetDefaultBranch(),
		Private:       r.GetPrivate(),
		OpenIssues:    r.GetOpenIssuesCount(),
		Stars:         r.GetStargazersCount(),
		WebURL:        r.GetHTMLURL(),
		FetchedAt:     time.Now(),
	}, nil
}
