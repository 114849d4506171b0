package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// metadataDir is the repository metadata directory whose presence marks a
// project root.
const metadataDir = ".git"

// FindRoot walks upward from startDir and returns the first directory
// containing repository metadata. ErrNotInProject is returned when the
// filesystem root is reached without a match.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	for {
		info, err := os.Stat(filepath.Join(dir, metadataDir))
		if err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInProject
		}
		dir = parent
	}
}

// Project describes a located repository.
type Project struct {
	Root      string // repository root directory
	RemoteURL string // origin remote URL, empty when none is configured
	Name      string // project identity derived from RemoteURL
}

// Describe locates the repository containing startDir and derives its
// identity. A repository without an origin remote is still described, with
// RemoteURL and Name left empty; only missing repository metadata is an
// error.
func Describe(startDir string) (*Project, error) {
	root, err := FindRoot(startDir)
	if err != nil {
		return nil, err
	}

	proj := &Project{Root: root}
	url, err := OriginURL(root)
	if err != nil {
		if errors.Is(err, ErrNoRemote) {
			return proj, nil
		}
		return nil, err
	}

	proj.RemoteURL = url
	proj.Name = ProjectName(url)
	return proj, nil
}
