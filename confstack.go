package confstack

import "github.com/randalmurphal/confstack/config"

// Option configures Load and LoadGlobal.
type Option func(*options)

type options struct {
	startDir string
	homeDir  string
}

// WithStartDir sets the directory the repository search starts from.
// Defaults to the current working directory.
func WithStartDir(dir string) Option {
	return func(o *options) {
		o.startDir = dir
	}
}

// WithHomeDir overrides the user home directory used to locate the
// user-global overlay and per-project local overrides. Primarily for tests.
func WithHomeDir(dir string) Option {
	return func(o *options) {
		o.homeDir = dir
	}
}

// LoadGlobal resolves the global cascade only: packaged defaults overlaid
// by the user-global file. Use it outside a repository.
func LoadGlobal(opts ...Option) (*config.GlobalConfig, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return config.NewGlobalConfig(globalOpts(o)...)
}

// Load resolves the full project cascade from the current (or configured)
// working directory. It fails with repo.ErrNotInProject outside a
// repository and config.ErrProjectConfigNotFound when the repository has no
// project file.
func Load(opts ...Option) (*config.ProjectConfig, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	global, err := config.NewGlobalConfig(globalOpts(o)...)
	if err != nil {
		return nil, err
	}

	var popts []config.ProjectOption
	if o.startDir != "" {
		popts = append(popts, config.WithStartDir(o.startDir))
	}
	if o.homeDir != "" {
		popts = append(popts, config.WithProjectHomeDir(o.homeDir))
	}
	return config.NewProjectConfig(global, popts...)
}

func globalOpts(o options) []config.GlobalOption {
	var gopts []config.GlobalOption
	if o.homeDir != "" {
		gopts = append(gopts, config.WithGlobalHomeDir(o.homeDir))
	}
	return gopts
}
