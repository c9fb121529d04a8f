package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Refresher RefresherConfig `yaml:"refresher"`
	Log       LogConfig       `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// DashboardConfig holds resolved-dashboard cache settings.
type DashboardConfig struct {
	// CacheTTL bounds how long a resolved dashboard may be served without
	// re-resolving. Zero disables the cache entirely.
	CacheTTL time.Duration `yaml:"cache_ttl" env:"DASHBOARD_CACHE_TTL" env-default:"30s"`
}

// RefresherConfig holds the background statistic refresher settings.
type RefresherConfig struct {
	Enabled bool `yaml:"enabled" env:"REFRESHER_ENABLED" env-default:"true"`
	// Schedule is a cron expression; the default sweeps every minute.
	Schedule string `yaml:"schedule" env:"REFRESHER_SCHEDULE" env-default:"* * * * *"`
	// BatchLimit caps how many stale statistics one sweep refreshes.
	BatchLimit int `yaml:"batch_limit" env:"REFRESHER_BATCH_LIMIT" env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
