package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied to fields left unset in the config file
const (
	DefaultDataDir                 = "/var/lib/burrow"
	DefaultRegionHeartbeatInterval = Duration(10 * time.Second)
	DefaultStoreHeartbeatInterval  = Duration(10 * time.Second)
	DefaultMetricsAddr             = ":9090"
)

// Duration wraps time.Duration so config files can use values like "10s"
type Duration time.Duration

// UnmarshalYAML parses a Go duration string
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration back to its string form
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds node configuration
type Config struct {
	// DataDir is the directory holding the storage engine
	DataDir string `yaml:"data_dir"`

	// Capacity caps the store's advertised capacity in bytes.
	// 0 means bounded only by the filesystem.
	Capacity uint64 `yaml:"capacity"`

	// RegionHeartbeatInterval is the cadence of per-region heartbeats
	RegionHeartbeatInterval Duration `yaml:"region_heartbeat_interval"`

	// StoreHeartbeatInterval is the cadence of store heartbeats
	StoreHeartbeatInterval Duration `yaml:"store_heartbeat_interval"`

	// MetricsAddr is the listen address for /metrics and /health.
	// Empty disables the endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// LogJSON selects JSON log output over console output
	LogJSON bool `yaml:"log_json"`
}

// Default returns a config populated with default values
func Default() *Config {
	return &Config{
		DataDir:                 DefaultDataDir,
		RegionHeartbeatInterval: DefaultRegionHeartbeatInterval,
		StoreHeartbeatInterval:  DefaultStoreHeartbeatInterval,
		MetricsAddr:             DefaultMetricsAddr,
		LogLevel:                "info",
	}
}

// Load reads a YAML config file and applies defaults for unset fields
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for unusable values
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.RegionHeartbeatInterval <= 0 {
		return fmt.Errorf("region_heartbeat_interval must be positive")
	}
	if c.StoreHeartbeatInterval <= 0 {
		return fmt.Errorf("store_heartbeat_interval must be positive")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
