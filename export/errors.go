package export

import "errors"

// Snapshot store errors.
var (
	// ErrSnapshotNotFound indicates no snapshot exists with the given ID.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
