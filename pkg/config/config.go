package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotstow/pkg/errors"
)

// Config is the effective dotstow configuration
type Config struct {
	Repo RepoConfig `koanf:"repo" toml:"repo" yaml:"repo"`
	Stow StowConfig `koanf:"stow" toml:"stow" yaml:"stow"`
}

// RepoConfig describes the layout of the dotfiles repository
type RepoConfig struct {
	Root     string   `koanf:"root" toml:"root" yaml:"root"`
	HostsDir string   `koanf:"hosts_dir" toml:"hosts_dir" yaml:"hosts_dir"`
	Exclude  []string `koanf:"exclude" toml:"exclude" yaml:"exclude"`
}

// StowConfig controls how the stow executable is invoked
type StowConfig struct {
	Binary  string   `koanf:"binary" toml:"binary" yaml:"binary"`
	Target  string   `koanf:"target" toml:"target" yaml:"target"`
	Verbose int      `koanf:"verbose" toml:"verbose" yaml:"verbose"`
	Args    []string `koanf:"args" toml:"args" yaml:"args"`
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg, err := Load(LoadOptions{})
	if err != nil {
		// embedded defaults are compiled in
		panic(err)
	}
	return cfg
}

// Validate checks values that would make discovery or linking ambiguous
func (c *Config) Validate() error {
	if c.Repo.HostsDir == "" {
		return errors.New(errors.ErrConfigParse, "repo.hosts_dir cannot be empty")
	}
	if strings.ContainsAny(c.Repo.HostsDir, `/\`) || c.Repo.HostsDir == "." || c.Repo.HostsDir == ".." {
		return errors.New(errors.ErrConfigParse, "repo.hosts_dir must be a single directory name").
			WithDetail("hosts_dir", c.Repo.HostsDir)
	}
	if c.Stow.Binary == "" {
		return errors.New(errors.ErrConfigParse, "stow.binary cannot be empty")
	}
	if c.Stow.Verbose < 0 || c.Stow.Verbose > 5 {
		return errors.Newf(errors.ErrConfigParse, "stow.verbose must be between 0 and 5, got %d", c.Stow.Verbose)
	}
	for _, pattern := range c.Repo.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "invalid exclude pattern %q", pattern)
		}
	}
	return nil
}
