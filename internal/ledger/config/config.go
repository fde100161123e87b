package config

import (
	"posto-ledger/pkg/config"
)

// Ledger holds ledger-service specific configuration.
type Ledger struct {
	RecentRecordsLimit int    `mapstructure:"recent_records_limit"`
	ItemCacheTTL       string `mapstructure:"item_cache_ttl"`
	RateLimitPerSecond int    `mapstructure:"rate_limit_per_second"`
	SeedServices       bool   `mapstructure:"seed_services"`
	PublishEvents      bool   `mapstructure:"publish_events"`
}

// Config holds the full configuration for the ledger service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	API      config.API      `mapstructure:"api"`
	Ledger   Ledger          `mapstructure:"ledger"`
}

// Load loads the ledger configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
