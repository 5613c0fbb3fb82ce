// Package config loads server configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds server configuration
type Config struct {
	// Host and Port for the HTTP listener
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `yaml:"storage_type"`

	// RedisURL is the Redis connection URL (required for redis storage)
	RedisURL string `yaml:"redis_url"`

	// Capacity is the reserved byte budget for a record's encoding.
	// Zero selects the codec default.
	Capacity int `yaml:"capacity"`
}

func defaults() Config {
	return Config{
		Port:        8080,
		StorageType: "memory",
	}
}

// Load reads configuration from the YAML file at path (skipped when empty),
// then applies environment overrides: ANCHOR_ADDR, ANCHOR_STORAGE_TYPE,
// ANCHOR_REDIS_URL, ANCHOR_CAPACITY.
func Load(path string) (Config, error) {
	cfg := defaults()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if addr := os.Getenv("ANCHOR_ADDR"); addr != "" {
		host, port, err := splitAddr(addr)
		if err != nil {
			return fmt.Errorf("ANCHOR_ADDR: %w", err)
		}
		c.Host = host
		c.Port = port
	}
	if st := os.Getenv("ANCHOR_STORAGE_TYPE"); st != "" {
		c.StorageType = st
	}
	if url := os.Getenv("ANCHOR_REDIS_URL"); url != "" {
		c.RedisURL = url
	}
	if cap := os.Getenv("ANCHOR_CAPACITY"); cap != "" {
		n, err := strconv.Atoi(cap)
		if err != nil {
			return fmt.Errorf("ANCHOR_CAPACITY: %w", err)
		}
		c.Capacity = n
	}
	return nil
}

func (c *Config) validate() error {
	switch c.StorageType {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("redis_url required when storage_type is redis")
		}
	default:
		return fmt.Errorf("invalid storage_type %q: must be 'memory' or 'redis'", c.StorageType)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative")
	}
	return nil
}

func splitAddr(addr string) (string, int, error) {
	i := strings.LastIndex(addr, ":")
	if i < 0 {
		return "", 0, fmt.Errorf("missing port in %q", addr)
	}
	port, err := strconv.Atoi(addr[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("bad port in %q", addr)
	}
	return addr[:i], port, nil
}
