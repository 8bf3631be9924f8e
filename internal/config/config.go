// Package config loads the orchestrator's optional TOML configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/0xamirreza/Docker4Iran/internal/paths"
)

// ErrValidation is a sentinel that wraps config validation failures (as
// opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrValidation) to distinguish the two.
var ErrValidation = errors.New("config validation failed")

// Config holds every tunable of the orchestrator and the companion daemon.
// All fields are optional; zero values are replaced by defaults.
type Config struct {
	Selectors Selectors `toml:"selectors"`
	Probe     Probe     `toml:"probe"`
	Monitor   Monitor   `toml:"monitor"`
}

// Selectors locates the external DNS and registry-mirror selector programs.
type Selectors struct {
	DNSScript    string `toml:"dns_script"`
	MirrorScript string `toml:"mirror_script"`
}

// Probe configures the vendor-endpoint connectivity probe.
type Probe struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Monitor configures the companion daemon's polling loop.
type Monitor struct {
	IntervalSeconds int    `toml:"interval_seconds"`
	LogPath         string `toml:"log_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Selectors: Selectors{
			DNSScript:    filepath.Join(paths.ShareDir, "dns_selector.py"),
			MirrorScript: filepath.Join(paths.ShareDir, "mirror_selector.py"),
		},
		Probe: Probe{
			URL:            "https://download.docker.com",
			TimeoutSeconds: 10,
		},
		Monitor: Monitor{
			IntervalSeconds: 60,
		},
	}
}

// Load reads the config file at path. A missing file is not an error; the
// defaults are returned instead.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates TOML config data. source names the origin
// for error messages.
func Parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Probe.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: probe.timeout_seconds must be positive", ErrValidation)
	}
	if c.Monitor.IntervalSeconds <= 0 {
		return fmt.Errorf("%w: monitor.interval_seconds must be positive", ErrValidation)
	}
	parsed, err := url.Parse(c.Probe.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: probe.url %q is not an absolute URL", ErrValidation, c.Probe.URL)
	}
	if c.Selectors.DNSScript == "" || c.Selectors.MirrorScript == "" {
		return fmt.Errorf("%w: selector script paths must not be empty", ErrValidation)
	}
	return nil
}

// ProbeTimeout returns the probe timeout as a duration.
func (c Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutSeconds) * time.Second
}

// MonitorInterval returns the daemon polling cadence as a duration.
func (c Config) MonitorInterval() time.Duration {
	return time.Duration(c.Monitor.IntervalSeconds) * time.Second
}
