package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFilename is the name shared by every confstack configuration
	// file: the project file at the repository root, the user-global
	// overlay, and per-project local overrides.
	ConfigFilename = "confstack.yml"

	// homeDirName is the directory under the user's home that holds the
	// user-global overlay and per-project local overrides.
	homeDirName = ".confstack"
)

//go:embed defaults/confstack.yml
var packagedDefaults []byte

// GlobalConfig is the bottom of the configuration cascade: packaged
// defaults shipped with the library, overlaid by the user's
// ~/.confstack/confstack.yml when present.
type GlobalConfig struct {
	layered  *Layered
	packaged Mapping
	user     Mapping
	userPath string
}

// GlobalOption configures NewGlobalConfig.
type GlobalOption func(*globalOptions)

type globalOptions struct {
	homeDir string
}

// WithGlobalHomeDir overrides the home directory used to locate the
// user-global overlay. Primarily for tests.
func WithGlobalHomeDir(dir string) GlobalOption {
	return func(o *globalOptions) {
		o.homeDir = dir
	}
}

// NewGlobalConfig loads the packaged defaults and the optional user-global
// overlay. The packaged defaults are compiled into the binary; failing to
// parse them aborts startup. A missing overlay file resolves to an empty
// mapping, a malformed one is an error.
func NewGlobalConfig(opts ...GlobalOption) (*GlobalConfig, error) {
	var o globalOptions
	for _, opt := range opts {
		opt(&o)
	}

	packaged, err := parseMapping(packagedDefaults)
	if err != nil {
		return nil, fmt.Errorf("parse packaged defaults: %w", err)
	}

	home := o.homeDir
	if home == "" {
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locate home directory: %w", err)
		}
	}

	userPath := filepath.Join(home, homeDirName, ConfigFilename)
	user, err := loadOptionalFile(userPath)
	if err != nil {
		return nil, err
	}

	return &GlobalConfig{
		layered:  NewLayered(user, nil, Named("defaults", packaged)),
		packaged: packaged,
		user:     user,
		userPath: userPath,
	}, nil
}

// Get resolves key against the global cascade: user overlay first, packaged
// defaults beneath.
func (g *GlobalConfig) Get(key string) (any, bool) {
	return g.layered.Get(key)
}

// GetString returns the value for key when it resolves to a string.
func (g *GlobalConfig) GetString(key string) (string, bool) {
	return g.layered.GetString(key)
}

// Layered exposes the underlying layered view.
func (g *GlobalConfig) Layered() *Layered {
	return g.layered
}

// Packaged returns the packaged defaults mapping.
func (g *GlobalConfig) Packaged() Mapping {
	return g.packaged
}

// User returns the user-global overlay mapping, empty when the overlay file
// does not exist.
func (g *GlobalConfig) User() Mapping {
	return g.user
}

// UserPath returns the path the user-global overlay was loaded from,
// whether or not the file exists.
func (g *GlobalConfig) UserPath() string {
	return g.userPath
}
