package repo

import "errors"

// Repository discovery errors.
var (
	// ErrNotInProject indicates no repository metadata was found at or
	// above the start directory.
	ErrNotInProject = errors.New("not inside a project repository")

	// ErrNoRemote indicates the repository has no origin remote configured.
	ErrNoRemote = errors.New("no origin remote configured")
)
