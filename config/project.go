package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/randalmurphal/confstack/repo"
)

// ProjectConfig is the full four-tier cascade for a project: project-local
// overrides over the project file over the global config.
type ProjectConfig struct {
	layered   *Layered
	global    *GlobalConfig
	root      string
	remoteURL string
	identity  string
	project   Mapping
	local     Mapping
	localPath string
}

// ProjectOption configures NewProjectConfig.
type ProjectOption func(*projectOptions)

type projectOptions struct {
	startDir string
	homeDir  string
}

// WithStartDir sets the directory the repository search starts from.
// Defaults to the current working directory.
func WithStartDir(dir string) ProjectOption {
	return func(o *projectOptions) {
		o.startDir = dir
	}
}

// WithProjectHomeDir overrides the home directory used to locate the
// per-project local override. Primarily for tests.
func WithProjectHomeDir(dir string) ProjectOption {
	return func(o *projectOptions) {
		o.homeDir = dir
	}
}

// NewProjectConfig locates the repository containing the start directory
// and composes the project cascade on top of global.
//
// It fails with repo.ErrNotInProject when no repository metadata is found
// above the start directory, and with ErrProjectConfigNotFound when the
// repository root has no project file. An empty project file is valid and
// yields an empty mapping. The per-project local override is looked up
// under the user's home by the project identity derived from the origin
// remote URL; a repository without an origin remote simply has no local
// override tier.
func NewProjectConfig(global *GlobalConfig, opts ...ProjectOption) (*ProjectConfig, error) {
	o := projectOptions{startDir: "."}
	for _, opt := range opts {
		opt(&o)
	}

	proj, err := repo.Describe(o.startDir)
	if err != nil {
		return nil, err
	}

	projectPath := filepath.Join(proj.Root, ConfigFilename)
	data, err := os.ReadFile(projectPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrProjectConfigNotFound, proj.Root)
		}
		return nil, fmt.Errorf("read %s: %w", projectPath, err)
	}
	project, err := parseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", projectPath, err)
	}

	local := Mapping{}
	localPath := ""
	if proj.Name != "" {
		home := o.homeDir
		if home == "" {
			home, err = os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("locate home directory: %w", err)
			}
		}
		localPath = filepath.Join(home, homeDirName, proj.Name, ConfigFilename)
		local, err = loadOptionalFile(localPath)
		if err != nil {
			return nil, err
		}
	}

	return &ProjectConfig{
		layered:   NewLayered(local, nil, Named("project", project), Named("global", global)),
		global:    global,
		root:      proj.Root,
		remoteURL: proj.RemoteURL,
		identity:  proj.Name,
		project:   project,
		local:     local,
		localPath: localPath,
	}, nil
}

// Get resolves key against the full cascade: local override, project file,
// user-global overlay, packaged defaults.
func (p *ProjectConfig) Get(key string) (any, bool) {
	return p.layered.Get(key)
}

// GetWithSource resolves key and reports the winning tier: "local",
// "project", or "global".
func (p *ProjectConfig) GetWithSource(key string) (any, Source, bool) {
	return p.layered.GetWithSource(key)
}

// GetString returns the value for key when it resolves to a string.
func (p *ProjectConfig) GetString(key string) (string, bool) {
	return p.layered.GetString(key)
}

// GetBool returns the value for key when it resolves to a bool.
func (p *ProjectConfig) GetBool(key string) (bool, bool) {
	return p.layered.GetBool(key)
}

// GetMapping returns the value for key when it resolves to a nested
// mapping.
func (p *ProjectConfig) GetMapping(key string) (Mapping, bool) {
	return p.layered.GetMapping(key)
}

// Layered exposes the underlying layered view.
func (p *ProjectConfig) Layered() *Layered {
	return p.layered
}

// Root returns the discovered repository root.
func (p *ProjectConfig) Root() string {
	return p.root
}

// RemoteURL returns the origin remote URL, empty when the repository has no
// origin remote.
func (p *ProjectConfig) RemoteURL() string {
	return p.remoteURL
}

// Identity returns the project name derived from the remote URL, empty when
// the repository has no origin remote.
func (p *ProjectConfig) Identity() string {
	return p.identity
}

// Project returns the project file's mapping, empty for an empty file.
func (p *ProjectConfig) Project() Mapping {
	return p.project
}

// LocalOverride returns the per-project local override mapping, empty when
// no override file exists.
func (p *ProjectConfig) LocalOverride() Mapping {
	return p.local
}

// LocalOverridePath returns the path the local override was looked up at,
// empty when the repository has no identity.
func (p *ProjectConfig) LocalOverridePath() string {
	return p.localPath
}

// Global returns the global config this cascade falls back to.
func (p *ProjectConfig) Global() *GlobalConfig {
	return p.global
}
