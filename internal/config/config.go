// Package config loads server configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds whisperd configuration
type Config struct {
	Port        int    `yaml:"port"`         // gRPC listen port
	MetricsPort int    `yaml:"metrics_port"` // observability HTTP port
	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error
	Pretty      bool   `yaml:"pretty"`       // console-friendly log output
	Datacenter  int64  `yaml:"datacenter"`   // snowflake datacenter id, 0-31
	Machine     int64  `yaml:"machine"`      // snowflake machine id, 0-31
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port:        50051,
		MetricsPort: 9091,
		LogLevel:    "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path
// yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from WHISPER_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("WHISPER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: WHISPER_PORT: %w", err)
		}
		c.Port = port
	}
	if v := os.Getenv("WHISPER_METRICS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: WHISPER_METRICS_PORT: %w", err)
		}
		c.MetricsPort = port
	}
	if v := os.Getenv("WHISPER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WHISPER_DATACENTER"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: WHISPER_DATACENTER: %w", err)
		}
		c.Datacenter = id
	}
	if v := os.Getenv("WHISPER_MACHINE"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: WHISPER_MACHINE: %w", err)
		}
		c.Machine = id
	}
	return nil
}
