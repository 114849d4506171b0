// Package config resolves layered application configuration into a single
// queryable view.
//
// Four tiers participate, highest precedence first:
//  1. Project-local overrides (~/.confstack/<project>/confstack.yml)
//  2. The project file (confstack.yml at the repository root)
//  3. The user-global overlay (~/.confstack/confstack.yml)
//  4. Packaged defaults shipped with the library
//
// Keys are addressed in segmented form: "project__name" walks the nested
// mapping {"project": {"name": ...}}. Resolution is one-shot at
// construction; the resulting objects are read-only and safe for concurrent
// readers.
//
// # Basic Usage
//
//	global, err := config.NewGlobalConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	project, err := config.NewProjectConfig(global)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, ok := project.GetString("project__name")
//
// Construction fails with repo.ErrNotInProject outside a repository and
// ErrProjectConfigNotFound when the repository has no project file. Missing
// override files are never errors; they resolve to empty mappings.
package config
