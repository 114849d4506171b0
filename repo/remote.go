package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OriginURL reads the repository's metadata config and returns the URL of
// the origin remote. ErrNoRemote is returned when the config file or the
// remote is missing.
func OriginURL(root string) (string, error) {
	path := filepath.Join(root, metadataDir, "config")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoRemote
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	inOrigin := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") {
			inOrigin = line == `[remote "origin"]`
			continue
		}
		if !inOrigin {
			continue
		}
		if key, value, ok := strings.Cut(line, "="); ok && strings.TrimSpace(key) == "url" {
			return strings.TrimSpace(value), nil
		}
	}

	return "", ErrNoRemote
}

// ProjectName extracts the project name from a remote URL: the final path
// segment with any .git suffix stripped. SSH (git@host:Owner/Name) and
// HTTPS (https://host/Owner/Name) forms yield the same name.
func ProjectName(remoteURL string) string {
	name := strings.TrimSuffix(strings.TrimSpace(remoteURL), "/")
	name = strings.TrimSuffix(name, ".git")
	if i := strings.LastIndexAny(name, "/:"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// ParseOwnerName extracts the owner and project segments from a git remote
// URL.
func ParseOwnerName(remoteURL string) (owner, name string, err error) {
	// SSH URLs: git@github.com:owner/repo.git
	if strings.HasPrefix(remoteURL, "git@") {
		_, path, ok := strings.Cut(remoteURL, ":")
		if !ok {
			return "", "", fmt.Errorf("invalid SSH remote URL %q", remoteURL)
		}
		parts := strings.Split(strings.TrimSuffix(path, ".git"), "/")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("invalid repository path in %q", remoteURL)
		}
		return parts[0], parts[1], nil
	}

	// HTTPS URLs: https://github.com/owner/repo.git
	trimmed := strings.TrimPrefix(remoteURL, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	parts := strings.Split(trimmed, "/")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("invalid remote URL %q", remoteURL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
