// Package testutil provides repository and config-file fixtures for tests.
//
// Fixtures write repository metadata (.git/config) directly to a temp
// directory; no git binary is required since the library only reads the
// filesystem.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// InitRepo creates a temporary directory containing repository metadata and
// returns its path. The directory is removed when the test ends.
func InitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("create .git: %v", err)
	}
	return dir
}

// SetRemote writes an origin remote with the given URL into the
// repository's metadata config.
func SetRemote(t *testing.T, repoDir, url string) {
	t.Helper()

	content := fmt.Sprintf("[remote \"origin\"]\n\turl = %s\n\tfetch = +refs/heads/*:refs/remotes/origin/*\n", url)
	writeFile(t, filepath.Join(repoDir, ".git", "config"), content)
}

// WriteMetadataConfig writes raw content to the repository's metadata
// config file. Use SetRemote for the common origin-only case.
func WriteMetadataConfig(t *testing.T, repoDir, content string) {
	t.Helper()

	writeFile(t, filepath.Join(repoDir, ".git", "config"), content)
}

// WriteProjectConfig writes a confstack.yml with the given content at the
// repository root.
func WriteProjectConfig(t *testing.T, repoDir, content string) {
	t.Helper()

	writeFile(t, filepath.Join(repoDir, "confstack.yml"), content)
}

// WriteUserConfig writes the user-global overlay under the given home
// directory.
func WriteUserConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	writeFile(t, filepath.Join(homeDir, ".confstack", "confstack.yml"), content)
}

// WriteLocalOverride writes a per-project local override for the named
// project under the given home directory.
func WriteLocalOverride(t *testing.T, homeDir, project, content string) {
	t.Helper()

	writeFile(t, filepath.Join(homeDir, ".confstack", project, "confstack.yml"), content)
}

// Mkdir creates a nested directory under base and returns its path.
func Mkdir(t *testing.T, base, rel string) string {
	t.Helper()

	dir := filepath.Join(base, filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create %s: %v", dir, err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
