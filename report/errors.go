package report

import "errors"

// Metadata retrieval errors.
var (
	// ErrUnknownProvider indicates the remote URL belongs to no supported
	// hosting platform.
	ErrUnknownProvider = errors.New("unknown repository hosting provider")

	// ErrRepoNotFound indicates the repository does not exist or the token
	// cannot see it.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrNoToken indicates no access token was found in the environment.
	ErrNoToken = errors.New("no access token configured")
)
