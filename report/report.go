package report

import (
	"context"
	"time"
)

// Metadata is the repository information gathered for reporting.
type Metadata struct {
	FullName      string    // owner/name path on the hosting platform
	Description   string    // repository description
	DefaultBranch string    // default branch name
	Private       bool      // visibility
	OpenIssues    int       // open issue count
	Stars         int       // star count
	WebURL        string    // browser URL
	FetchedAt     time.Time // when the metadata was retrieved
}

// Provider fetches repository metadata from a hosting platform.
type Provider interface {
	Fetch(ctx context.Context) (*Metadata, error)
}
