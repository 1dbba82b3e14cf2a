package config

import (
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRender(t *testing.T) {
	cfg := Default()
	cfg.Stow.Args = []string{"--no-folding"}

	t.Run("toml", func(t *testing.T) {
		out, err := cfg.Render("toml")
		require.NoError(t, err)

		var back Config
		require.NoError(t, toml.Unmarshal(out, &back))
		assert.Equal(t, *cfg, back)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := cfg.Render("yaml")
		require.NoError(t, err)
		assert.Contains(t, string(out), "hosts_dir: hosts")

		var back Config
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, cfg.Stow.Args, back.Stow.Args)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := cfg.Render("json")
		assert.Error(t, err)
	})
}
