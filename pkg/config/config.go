package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment overrides, e.g. PROJBUILD_STRUCTURE_FILE
const EnvPrefix = "PROJBUILD_"

// ProjectConfigFiles are looked up in the working directory, first match wins
var ProjectConfigFiles = []string{".projbuild.toml", ".projbuild.yaml", ".projbuild.yml"}

// Config is the effective projbuild configuration
type Config struct {
	StructureFile string   `koanf:"structure_file" toml:"structure_file" yaml:"structure_file"`
	EntryPoint    string   `koanf:"entry_point" toml:"entry_point" yaml:"entry_point"`
	Protected     []string `koanf:"protected" toml:"protected" yaml:"protected"`
	Ignore        []string `koanf:"ignore" toml:"ignore" yaml:"ignore"`
	Diagnostics   bool     `koanf:"diagnostics" toml:"diagnostics" yaml:"diagnostics"`
	AssumeYes     bool     `koanf:"assume_yes" toml:"assume_yes" yaml:"assume_yes"`

	// Source is the project config file that was loaded, if any
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration for workDir. Overrides are applied last and
// use koanf keys (e.g. "diagnostics": true); nil means no overrides.
func Load(workDir string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Project config file if it exists
	source := ""
	for _, filename := range ProjectConfigFiles {
		path := filepath.Join(workDir, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if filepath.Ext(filename) != ".toml" {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load project config from %s: %w", path, err)
		}
		source = path
		break
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
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
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded defaults with nothing layered on top
func Default() *Config {
	k := koanf.New(".")
	_ = k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser())
	var cfg Config
	_ = k.Unmarshal("", &cfg)
	return &cfg
}

// Validate checks required fields
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StructureFile) == "" {
		return errors.New("structure_file: must not be empty")
	}
	if filepath.IsAbs(c.StructureFile) {
		return errors.New("structure_file: must be relative to the working directory")
	}
	return nil
}

// ProtectedNames returns the files forceful cleanup must keep: the structure
// file (as a slash-separated relative path), the entry point and any
// configured extras.
func (c *Config) ProtectedNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	add(filepath.ToSlash(filepath.Clean(c.StructureFile)))
	add(c.EntryPoint)
	for _, p := range c.Protected {
		add(p)
	}
	return names
}
