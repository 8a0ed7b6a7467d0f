// Package config handles configuration management for projbuild.
// It layers embedded TOML defaults, an optional project config file
// (.projbuild.toml or .projbuild.yaml), PROJBUILD_* environment variables
// and command-line overrides, using koanf.
package config
