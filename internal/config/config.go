package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/setbreak/internal/route"
)

const appName = "setbreak"

// Defaults applied by the getters when a key is unset or invalid.
const (
	DefaultVolume       = 0.7
	DefaultTickInterval = time.Second
	DefaultSkipStep     = 30 * time.Second
	DefaultVolumeStep   = 0.05
	DefaultLogLevel     = "info"
)

type Config struct {
	Volume       *float64 `koanf:"volume"`        // initial volume, 0.0-1.0 (default: 0.7)
	VolumeStep   float64  `koanf:"volume_step"`   // +/- increment (default: 0.05)
	TickInterval string   `koanf:"tick_interval"` // simulated clock period, e.g. "1s" or "250ms"
	SkipStep     string   `koanf:"skip_step"`     // rewind/skip distance (default: "30s")
	Catalog      string   `koanf:"catalog"`       // optional TOML fixture file replacing the built-in shows
	StartScreen  string   `koanf:"start_screen"`  // route path of the first screen (default: "/")

	// Logging goes to a file; the terminal belongs to the UI.
	LogFile  string `koanf:"log_file"`
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error", "disabled"
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order (last wins). Missing files are
// skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.LogFile = expandPath(cfg.LogFile)

	cfg.StartScreen = strings.TrimSpace(cfg.StartScreen)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/setbreak/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasCatalog returns true if a fixture file replaces the built-in catalog.
func (c *Config) HasCatalog() bool {
	return c.Catalog != ""
}

// GetVolume returns the initial volume, falling back to the default when
// unset or outside [0, 1].
func (c *Config) GetVolume() float64 {
	if c.Volume == nil || *c.Volume < 0 || *c.Volume > 1 {
		return DefaultVolume
	}
	return *c.Volume
}

// GetVolumeStep returns the volume increment for +/-.
func (c *Config) GetVolumeStep() float64 {
	if c.VolumeStep <= 0 || c.VolumeStep > 1 {
		return DefaultVolumeStep
	}
	return c.VolumeStep
}

// GetTickInterval returns the simulated clock period.
func (c *Config) GetTickInterval() time.Duration {
	return parseDuration(c.TickInterval, DefaultTickInterval)
}

// GetSkipStep returns the rewind/skip distance.
func (c *Config) GetSkipStep() time.Duration {
	return parseDuration(c.SkipStep, DefaultSkipStep)
}

// GetStartScreen returns the first route, "/" when unset or unknown.
func (c *Config) GetStartScreen() route.Route {
	r, err := route.Parse(c.StartScreen)
	if err != nil {
		return route.Route{Screen: route.Welcome}
	}
	return r
}

// GetLogFile returns the log file path, defaulting to the XDG state dir.
func (c *Config) GetLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// GetLogLevel returns the configured log level name.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
