package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tirasundara/change-service/pkg/amountutil"
)

// Config holds runtime configuration for the change service
type Config struct {
	DefaultCurrency string
	DefaultDivisor  int
	MaxAmount       int64 // minor units
	LogLevel        string
}

// Load reads configuration from environment variables and a .env file if present
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("CHANGE_DEFAULT_CURRENCY", "USD")
	viper.SetDefault("CHANGE_DEFAULT_DIVISOR", 3)
	viper.SetDefault("CHANGE_MAX_AMOUNT", amountutil.DefaultMaxAmount)
	viper.SetDefault("CHANGE_LOG_LEVEL", "info")
	viper.AutomaticEnv()

	cfg := &Config{
		DefaultCurrency: viper.GetString("CHANGE_DEFAULT_CURRENCY"),
		DefaultDivisor:  viper.GetInt("CHANGE_DEFAULT_DIVISOR"),
		MaxAmount:       viper.GetInt64("CHANGE_MAX_AMOUNT"),
		LogLevel:        viper.GetString("CHANGE_LOG_LEVEL"),
	}

	if cfg.DefaultDivisor <= 0 {
		return nil, fmt.Errorf("CHANGE_DEFAULT_DIVISOR must be a positive integer, got %d", cfg.DefaultDivisor)
	}
	if cfg.MaxAmount <= 0 {
		return nil, fmt.Errorf("CHANGE_MAX_AMOUNT must be a positive integer, got %d", cfg.MaxAmount)
	}

	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
