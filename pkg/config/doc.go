// Package config handles configuration management for dotstow.
// It layers embedded defaults, the user config file, the repository config
// file, an explicit --config file, DOTSTOW_* environment variables and
// command-line overrides using koanf.
package config
