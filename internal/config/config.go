// Package config loads patfmt configuration.
//
// Sources are applied in order, later ones override earlier:
// defaults, config file (TOML or YAML), PATFMT_* environment variables,
// command line flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/powerman/slogpattern"
)

// EnvPrefix is the prefix of environment variables, e.g. PATFMT_PATTERN.
const EnvPrefix = "PATFMT_"

// Keys.
const (
	KeyPattern       = "pattern"
	KeyTimezone      = "timezone"
	KeyLevel         = "level"
	KeyLoggerKey     = "logger_key"
	KeyLineSeparator = "line_separator"
)

// Config holds patfmt settings.
type Config struct {
	Pattern       string `koanf:"pattern"`
	Timezone      string `koanf:"timezone"`
	Level         string `koanf:"level"`
	LoggerKey     string `koanf:"logger_key"`
	LineSeparator string `koanf:"line_separator"`
}

func defaults() map[string]any {
	return map[string]any{
		KeyPattern:       slogpattern.TTCCConversionPattern,
		KeyTimezone:      "Local",
		KeyLevel:         "trace",
		KeyLoggerKey:     slogpattern.DefaultLoggerKey,
		KeyLineSeparator: "lf",
	}
}

// Load returns configuration built from defaults, the config file at path
// (skipped if path is empty), environment and overrides (usually flags).
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			parser = toml.Parser()
		case ".yaml", ".yml":
			parser = yaml.Parser()
		default:
			return nil, fmt.Errorf("unsupported config file format: %s", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Location returns the time zone used to output %d.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyTimezone, err)
	}
	return loc, nil
}

// Separator returns the line separator output by %n.
// Names "lf", "crlf" and "cr" are recognized, other values are used as is.
func (c *Config) Separator() string {
	switch strings.ToLower(c.LineSeparator) {
	case "lf":
		return "\n"
	case "crlf":
		return "\r\n"
	case "cr":
		return "\r"
	case "native", "":
		return slogpattern.LineSeparator
	}
	return c.LineSeparator
}

// MinLevel returns the minimal level of records to output.
func (c *Config) MinLevel() slog.Level {
	return slogpattern.ParseLevel(c.Level)
}

// LayoutOptions returns options for the Layout used to render records.
func (c *Config) LayoutOptions() (*slogpattern.LayoutOptions, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return &slogpattern.LayoutOptions{
		Location:      loc,
		LineSeparator: c.Separator(),
	}, nil
}

// Exists reports whether a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
