package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/xanzy/go-gitlab"

	"github.com/randalmurphal/confstack/repo"
)

// GitLabProvider fetches repository metadata from GitLab.
type GitLabProvider struct {
	client    *gitlab.Client
	projectID string // numeric ID or "namespace/project"
}

// NewGitLabProvider creates a GitLab provider.
// token is a personal access token. baseURL is the GitLab instance URL
// (empty for gitlab.com). projectID can be a numeric ID or
// "namespace/project" path.
func NewGitLabProvider(token, baseURL, projectID string) (*GitLabProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("GitLab token is required")
	}
	if projectID == "" {
		return nil, fmt.Errorf("project ID is required")
	}

	var client *gitlab.Client
	var err error

	if baseURL != "" {
		client, err = gitlab.NewClient(token, gitlab.WithBaseURL(baseURL))
	} else {
		client, err = gitlab.NewClient(token)
	}
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}

	return &GitLabProvider{
		client:    client,
		projectID: projectID,
	}, nil
}

// NewGitLabProviderFromURL creates a GitLab provider from a remote URL.
func NewGitLabProviderFromURL(token, remoteURL string) (*GitLabProvider, error) {
	owner, name, err := repo.ParseOwnerName(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote URL: %w", err)
	}
	return NewGitLabProvider(token, "", owner+"/"+name)
}

// Fetch retrieves the project's metadata.
func (p *GitLabProvider) Fetch(ctx context.Context) (*Metadata, error) {
	proj, resp, err := p.client.Projects.GetProject(p.projectID, nil, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrRepoNotFound
		}
		return nil, fmt.Errorf("fetch project: %w", err)
	}

	return &Metadata{
		FullName:      proj.PathWithNamespace,
		Description:   proj.Description,
		DefaultBranch: proj.DefaultBranch,
		Private:       proj.Visibility != gitlab.PublicVisibility,
		OpenIssues:    proj.OpenIssuesCount,
		Stars:         proj.StarCount,
		WebURL:        proj.WebURL,
		FetchedAt:     time.Now(),
	}, nil
}
