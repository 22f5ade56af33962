// Where: internal/config/config.go
// What: Project config load helpers.
// Why: Manage the optional .bundlerc.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/attic/bundlectl/internal/constants"
	"gopkg.in/yaml.v3"
)

// Project represents the optional .bundlerc.yaml in the project directory.
// It overrides the webpack binary and config paths and adds extra child
// environment entries ranked below the ambient environment.
type Project struct {
	Version int               `yaml:"version"`
	Webpack string            `yaml:"webpack,omitempty"`
	Config  string            `yaml:"config,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`
}

// Default returns the config used when no .bundlerc.yaml exists.
func Default() Project {
	return Project{Version: 1}
}

// Load reads .bundlerc.yaml from dir. A missing file is not an error and
// yields Default(). The content is schema-validated before decoding.
func Load(dir string) (Project, error) {
	path := filepath.Join(dir, constants.ProjectConfigFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Project{}, fmt.Errorf("read %s: %w", constants.ProjectConfigFile, err)
	}

	if err := validateProjectConfig(data); err != nil {
		return Project{}, fmt.Errorf("%s: %w", constants.ProjectConfigFile, err)
	}

	var cfg Project
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Project{}, fmt.Errorf("parse %s: %w", constants.ProjectConfigFile, err)
	}
	if cfg.Version == 0 {
		cfg.Version = Default().Version
	}
	return cfg, nil
}
