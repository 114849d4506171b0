// Package confstack resolves layered project configuration from packaged
// defaults, user-global overrides, project files, and project-local
// overrides into a single queryable view.
//
// The package is organized into subpackages by domain:
//
//   - config: layered resolution, the global and project cascades
//   - repo: project root discovery and identity from repository metadata
//   - report: remote repository metadata retrieval (GitHub, GitLab)
//   - export: row-oriented snapshot output to SQLite
//   - testutil: repository and config-file fixtures for tests
//
// # Quick Start
//
//	import "github.com/randalmurphal/confstack"
//
//	cfg, err := confstack.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := cfg.GetString("project__name")
//
// See individual package documentation for detailed usage.
package confstack
