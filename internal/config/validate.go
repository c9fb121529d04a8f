package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Dashboard.CacheTTL < 0 {
		return fmt.Errorf("dashboard.cache_ttl must not be negative (got %v)", c.Dashboard.CacheTTL)
	}

	if err := c.Refresher.validate(); err != nil {
		return fmt.Errorf("refresher: %w", err)
	}

	return nil
}

func (r *RefresherConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	if r.BatchLimit < 1 {
		return fmt.Errorf("batch_limit must be at least 1 (got %d)", r.BatchLimit)
	}
	if _, err := cron.ParseStandard(r.Schedule); err != nil {
		return fmt.Errorf("schedule %q: %w", r.Schedule, err)
	}

	return nil
}
