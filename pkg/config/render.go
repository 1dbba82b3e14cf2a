package config

import (
	"bytes"

	"github.com/arthur-debert/dotstow/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Render serializes the configuration as "toml" or "yaml"
func (c *Config) Render(format string) ([]byte, error) {
	switch format {
	case "toml", "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(c); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
		return buf.Bytes(), nil
	case "yaml", "yml":
		out, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want toml or yaml)", format)
	}
}
