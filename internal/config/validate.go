package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.WritesPerMinute <= 0 {
			return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", c.MaxPageSize)
	}
	if c.DefaultPageSize <= 0 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.MaxDeleteBatch <= 0 {
		return fmt.Errorf("max_delete_batch must be > 0 (got %d)", c.MaxDeleteBatch)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	if !slices.Contains([]string{"json", "text"}, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
