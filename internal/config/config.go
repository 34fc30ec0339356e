// SPDX-License-Identifier: MIT

// Package config resolves pathfinder's settings from, in increasing priority:
// built-in defaults, a TOML file, PATHFINDER_* environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/internal/logging"
)

// Run modes.
const (
	ModeDemo        = "demo"
	ModeRoute       = "route"
	ModeInteractive = "interactive"
	ModeServe       = "serve"
	ModeExport      = "export"
)

// Color settings.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultFile is read from the working directory when --config is not given.
const DefaultFile = "pathfinder.toml"

// EnvPrefix is the prefix of environment overrides; PATHFINDER_LOG_LEVEL sets log.level.
const EnvPrefix = "PATHFINDER_"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LogConfig selects the process logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Config holds every setting of the pathfinder command.
type Config struct {
	Mode     string    `koanf:"mode"`
	Network  string    `koanf:"network"` // HCL file; empty means the built-in sample
	From     string    `koanf:"from"`
	To       string    `koanf:"to"`
	Frontier string    `koanf:"frontier"`
	Addr     string    `koanf:"addr"`
	Watch    bool      `koanf:"watch"`
	Color    string    `koanf:"color"`
	Log      LogConfig `koanf:"log"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"mode":       ModeDemo,
		"network":    "",
		"from":       "",
		"to":         "",
		"frontier":   dijkstra.FrontierScan.String(),
		"addr":       ":8080",
		"watch":      false,
		"color":      ColorAuto,
		"log.level":  "info",
		"log.format": logging.FormatCompact,
	}
}

// NewFlagSet declares every flag understood by Load. Flag names use dashes
// where keys use dots: --log-level sets log.level.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "TOML config file (default ./"+DefaultFile+" if present)")
	fs.StringP("mode", "m", ModeDemo, "demo, route, interactive, serve or export")
	fs.StringP("network", "n", "", "HCL network file (default: built-in sample city)")
	fs.StringP("from", "f", "", "route start location")
	fs.StringP("to", "t", "", "route destination")
	fs.String("frontier", dijkstra.FrontierScan.String(), "frontier strategy: scan or heap")
	fs.String("addr", ":8080", "listen address for serve mode")
	fs.BoolP("watch", "w", false, "reload the network file when it changes")
	fs.String("color", ColorAuto, "auto, always or never")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", logging.FormatCompact, "compact or json")

	return fs
}

// Load resolves the configuration. fs may be nil; otherwise it must come from
// NewFlagSet and already be parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	path, explicit := configPath(fs)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "."), posflag.FlagVal(fs, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}

// configPath reports the file to read and whether the user named it.
func configPath(fs *pflag.FlagSet) (string, bool) {
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			return f.Value.String(), true
		}
	}
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p, true
	}

	return DefaultFile, false
}

// Validate rejects unknown enumerations and incomplete route requests.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDemo, ModeRoute, ModeInteractive, ModeServe, ModeExport:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Mode == ModeRoute && (c.From == "" || c.To == "") {
		return fmt.Errorf("%w: route mode needs --from and --to", ErrInvalidConfig)
	}
	if _, err := dijkstra.ParseFrontier(c.Frontier); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: unknown color setting %q", ErrInvalidConfig, c.Color)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatCompact, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Watch && c.Network == "" {
		return fmt.Errorf("%w: --watch needs --network", ErrInvalidConfig)
	}

	return nil
}

// FrontierValue returns the parsed frontier; call after Validate.
func (c *Config) FrontierValue() dijkstra.Frontier {
	f, _ := dijkstra.ParseFrontier(c.Frontier)
	return f
}
