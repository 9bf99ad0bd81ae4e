// Package config loads application configuration from environment variables.
// All variables use the BRIGHT_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Cache       CacheConfig
	Log         LogConfig
	CatalogPath string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// CacheConfig holds Redis view-cache settings. An empty URL disables
// the cache entirely; the engine never needs it.
type CacheConfig struct {
	URL        string
	TTLSeconds int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with BRIGHT_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("BRIGHT_SERVER_PORT", 8080),
			Host: envStr("BRIGHT_SERVER_HOST", "0.0.0.0"),
		},
		Cache: CacheConfig{
			URL:        envStr("BRIGHT_CACHE_URL", ""),
			TTLSeconds: envInt("BRIGHT_CACHE_TTL", 30),
		},
		Log: LogConfig{
			Level:  envStr("BRIGHT_LOG_LEVEL", "info"),
			Format: envStr("BRIGHT_LOG_FORMAT", "json"),
		},
		CatalogPath: envStr("BRIGHT_CATALOG_PATH", "./courses"),
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	info, err := os.Stat(c.CatalogPath)
	if err != nil {
		return fmt.Errorf("BRIGHT_CATALOG_PATH: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("BRIGHT_CATALOG_PATH %q is not a directory", c.CatalogPath)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("BRIGHT_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}

	return nil
}

// CacheEnabled returns true if a view cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.Cache.URL != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
