package config

import (
	"time"

	"posto-ledger/pkg/config"
)

// Report holds report-service specific configuration.
type Report struct {
	DailySummaryCron  string        `mapstructure:"daily_summary_cron"`
	TimeZone          string        `mapstructure:"time_zone"`
	LowStockThreshold string        `mapstructure:"low_stock_threshold"`
	AlertWindow       time.Duration `mapstructure:"alert_window"`

	// Movement stream consumer
	StreamReadTimeout   time.Duration `mapstructure:"stream_read_timeout"`
	StreamRetryInterval time.Duration `mapstructure:"stream_retry_interval"`
	StreamMaxIdle       time.Duration `mapstructure:"stream_max_idle"`
}

// Config holds the full configuration for the report service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	Telegram config.Telegram `mapstructure:"telegram"`
	Report   Report          `mapstructure:"report"`
}

// Load loads the report configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
