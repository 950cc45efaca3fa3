// Package config loads the optional sfdelta.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/sfdelta/internal/project"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the file looked up in the repository root.
const ConfigFileName = "sfdelta.yaml"

// Change source names accepted in the source key.
const (
	SourceGit    = "git"
	SourceGitLab = "gitlab"
	SourceTree   = "tree"
)

type GitLabConfig struct {
	Server    string `yaml:"server,omitempty"`
	ProjectID string `yaml:"project_id,omitempty"`
}

type DeployConfig struct {
	Wait  int    `yaml:"wait,omitempty"`
	Alias string `yaml:"alias,omitempty"`
}

type ProjectConfig struct {
	Project     string       `yaml:"project,omitempty"`
	Manifest    string       `yaml:"manifest,omitempty"`
	Output      string       `yaml:"output,omitempty"`
	Source      string       `yaml:"source,omitempty"`
	Ignore      []string     `yaml:"ignore,omitempty"`
	APIVersion  string       `yaml:"api_version,omitempty"`
	VersionsURL string       `yaml:"versions_url,omitempty"`
	GitLab      GitLabConfig `yaml:"gitlab,omitempty"`
	Deploy      DeployConfig `yaml:"deploy,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *ProjectConfig {
	cfg := &ProjectConfig{}
	cfg.applyDefaults()
	return cfg
}

// Load reads ConfigFileName from dir, fills defaults, and validates it.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w (%w)", configPath, err, sfdelta.ErrInvalidConfig)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file is absent.
func LoadOrDefault(dir string) (*ProjectConfig, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Validate reports every invalid setting at once.
func (c *ProjectConfig) Validate() error {
	var errs []error
	switch c.Source {
	case SourceGit, SourceGitLab, SourceTree:
	default:
		errs = append(errs, fmt.Errorf("source must be %q, %q or %q, got %q", SourceGit, SourceGitLab, SourceTree, c.Source))
	}
	if c.Deploy.Wait < 0 {
		errs = append(errs, fmt.Errorf("deploy.wait must not be negative, got %d", c.Deploy.Wait))
	}
	if err := project.ValidatePatterns(c.Ignore); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", sfdelta.ErrInvalidConfig, errors.Join(errs...))
}

func (c *ProjectConfig) applyDefaults() {
	if c.Project == "" {
		c.Project = sfdelta.DefaultProjectFile
	}
	if c.Manifest == "" {
		c.Manifest = sfdelta.DefaultManifestPath
	}
	if c.Output == "" {
		c.Output = sfdelta.DefaultOutputPath
	}
	if c.Source == "" {
		c.Source = SourceGit
	}
	if c.Deploy.Wait == 0 {
		c.Deploy.Wait = sfdelta.DefaultDeployWait
	}
}
