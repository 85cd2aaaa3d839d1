package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Analytics.FrequencyMonths <= 0 {
		return fmt.Errorf("analytics.frequency_months must be > 0 (got %d)", c.Analytics.FrequencyMonths)
	}
	if c.Analytics.HeatmapMonths <= 0 {
		return fmt.Errorf("analytics.heatmap_months must be > 0 (got %d)", c.Analytics.HeatmapMonths)
	}

	if c.Redis.Enabled() && c.Redis.CacheTTL <= 0 {
		return fmt.Errorf("redis.cache_ttl must be > 0 when redis is enabled (got %v)", c.Redis.CacheTTL)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}
