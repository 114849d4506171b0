package report

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-github/v57/github"
)

// newTestGitHubProvider creates a GitHubProvider pointing at a test server.
func newTestGitHubProvider(t *testing.T, handler http.Handler) *GitHubProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	client.BaseURL, _ = client.BaseURL.Parse(server.URL + "/")

	return &GitHubProvider{
		client: client,
		owner:  "testowner",
		name:   "testrepo",
	}
}

func TestNewGitHubProvider(t *testing.T) {
	p, err := NewGitHubProvider("token123", "owner", "repo")
	if err != nil {
		t.Fatalf("NewGitHubProvider: %v", err)
	}
	if p.owner != "owner" || p.name != "repo" {
		t.Errorf("owner/name = %s/%s", p.owner, p.name)
	}
}

func TestNewGitHubProvider_MissingArgs(t *testing.T) {
	if _, err := NewGitHubProvider("", "owner", "repo"); err == nil {
		t.Error("expected error for missing token")
	}
	if _, err := NewGitHubProvider("token", "", "repo"); err == nil {
		t.Error("expected error for missing owner")
	}
}

func TestNewGitHubProviderFromURL(t *testing.T) {
	p, err := NewGitHubProviderFromURL("token123", "git@github.com:TestOwner/TestRepo.git")
	if err != nil {
		t.Fatalf("NewGitHubProviderFromURL: %v", err)
	}
	if p.owner != "TestOwner" || p.name != "TestRepo" {
		t.Errorf("owner/name = %s/%s", p.owner, p.name)
	}

	if _, err := NewGitHubProviderFromURL("token123", "nonsense"); err == nil {
		t.Error("expected error for unparsable URL")
	}
}

func TestGitHubProvider_Fetch(t *testing.T) {
	p := newTestGitHubProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/testowner/testrepo" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"full_name": "testowner/testrepo",
			"description": "a test repository",
			"default_branch": "main",
			"private": true,
			"open_issues_count": 3,
			"stargazers_count": 42,
			"html_url": "https://github.com/testowner/testrepo"
		}`))
	}))

	meta, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if meta.FullName != "testowner/testrepo" {
		t.Errorf("FullName = %q", meta.FullName)
	}
	if meta.Description != "a test repository" {
		t.Errorf("Description = %q", meta.Description)
	}
	if meta.DefaultBranch != "main" {
		t.Errorf("DefaultBranch = %q", meta.DefaultBranch)
	}
	if !meta.Private {
		t.Error("Private = false, want true")
	}
	if meta.OpenIssues != 3 || meta.Stars != 42 {
		t.Errorf("OpenIssues/Stars = %d/%d", meta.OpenIssues, meta.Stars)
	}
	if meta.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestGitHubProvider_FetchNotFound(t *testing.T) {
	p := newTestGitHubProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))

	_, err := p.Fetch(context.Background())
	if !errors.Is(err, ErrRepoNotFound) {
		t.Errorf("err = %v, want ErrRepoNotFound", err)
	}
}
