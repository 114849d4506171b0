package config

import "errors"

// Configuration loading errors.
var (
	// ErrProjectConfigNotFound indicates a repository was found but it has
	// no project configuration file at its root.
	ErrProjectConfigNotFound = errors.New("project configuration file not found")
)
