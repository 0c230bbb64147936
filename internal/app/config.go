package app

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

// Defaults assume a conventional Flutter project layout.
const (
	DefaultInput      = "assets/fonts/iconfont.json"
	DefaultOutput     = "lib/generated/icon_font.dart"
	DefaultClassName  = "IconFont"
	DefaultFontFamily = "ComIcon"

	// ConfigFile is the optional per-project config, read when present.
	ConfigFile = ".glyphgen.yaml"
)

// Config is the immutable per-run configuration. Precedence, lowest to
// highest: built-in defaults, YAML config file, GLYPHGEN_* environment
// variables, command-line flags (applied by the CLI layer).
type Config struct {
	Input      string `yaml:"input" env:"GLYPHGEN_INPUT"`
	Output     string `yaml:"output" env:"GLYPHGEN_OUTPUT"`
	ClassName  string `yaml:"class_name" env:"GLYPHGEN_CLASS"`
	FontFamily string `yaml:"font_family" env:"GLYPHGEN_FAMILY"`
	Helpers    bool   `yaml:"helpers" env:"GLYPHGEN_HELPERS"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Input:      DefaultInput,
		Output:     DefaultOutput,
		ClassName:  DefaultClassName,
		FontFamily: DefaultFontFamily,
	}
}

// LoadConfig merges defaults, an optional YAML file, and environment
// variables. An empty path means ConfigFile, read only if present; an
// explicit path that cannot be read is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = ConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	case explicit:
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
