package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config.
// DOTSTOW_STOW_BINARY maps to stow.binary, DOTSTOW_REPO_HOSTS_DIR to
// repo.hosts_dir.
const EnvPrefix = "DOTSTOW_"

// RepoConfigFiles are looked up in the repository root, first match wins
var RepoConfigFiles = []string{".dotstow.toml", ".dotstow.yaml", ".dotstow.yml"}

// LoadOptions selects the files and overrides to layer on top of the defaults.
// Empty fields are skipped.
type LoadOptions struct {
	// UserConfigPath is usually $XDG_CONFIG_HOME/dotstow/config.toml
	UserConfigPath string

	// RepoRoot is searched for one of RepoConfigFiles
	RepoRoot string

	// ExtraFile is an explicit --config file; it must exist
	ExtraFile string

	// Overrides are dotted keys set from command-line flags
	Overrides map[string]interface{}
}

// Load builds the effective configuration. Later layers win:
// defaults, user file, repository file, extra file, environment, overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if opts.UserConfigPath != "" && fileExists(opts.UserConfigPath) {
		if err := loadFile(k, opts.UserConfigPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.UserConfigPath).Msg("Loaded user config")
	}

	if opts.RepoRoot != "" {
		for _, name := range RepoConfigFiles {
			path := filepath.Join(opts.RepoRoot, name)
			if !fileExists(path) {
				continue
			}
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", path).Msg("Loaded repository config")
			break
		}
	}

	if opts.ExtraFile != "" {
		if !fileExists(opts.ExtraFile) {
			return nil, errors.New(errors.ErrConfigLoad, "config file does not exist").
				WithDetail("path", opts.ExtraFile)
		}
		if err := loadFile(k, opts.ExtraFile); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey turns DOTSTOW_REPO_HOSTS_DIR into repo.hosts_dir: only the first
// underscore after the prefix separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".toml", "":
		parser = toml.Parser()
	default:
		return errors.New(errors.ErrConfigLoad, "unsupported config file format").
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
