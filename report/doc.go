// Package report retrieves remote repository metadata for reporting.
//
// Providers exist for GitHub and GitLab; the right one is usually picked
// from the origin remote URL:
//
//	provider, err := report.ProviderFromEnv(cfg.RemoteURL())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	meta, err := provider.Fetch(ctx)
//
// Authentication uses a personal access token (GITHUB_TOKEN, GITLAB_TOKEN,
// or GIT_TOKEN), or for GitHub a registered App via AppTokenSource.
package report
