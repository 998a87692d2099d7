// Package config provides configuration management for the screener.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"spread-screener/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Screener ScreenerConfig `mapstructure:"screener"`
	UI       UIConfig       `mapstructure:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ScreenerConfig holds the engine constants. They live in configuration so
// contract sizes and thresholds are never hard-baked literals.
type ScreenerConfig struct {
	LotSize            float64 `mapstructure:"lot_size"`
	MaxBidAskSpread    float64 `mapstructure:"max_bid_ask_spread"`
	RiskRewardMultiple float64 `mapstructure:"risk_reward_multiple"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/spread-screener"
	}
	return filepath.Join(home, ".config", "spread-screener")
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used. A missing config file is
// not an error: a template is written and defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("screener.lot_size", 25.0)
	v.SetDefault("screener.max_bid_ask_spread", 2.0)
	v.SetDefault("screener.risk_reward_multiple", 3.0)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", false)
	v.SetDefault("logging.file", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if werr := writeTemplateConfig(configDir); werr != nil {
				return nil, fmt.Errorf("creating config template: %w", werr)
			}
		} else {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SCREENER_LOT_SIZE"); v != "" {
		if lot, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Screener.LotSize = lot
		}
	}
	if v := os.Getenv("SCREENER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Screener.LotSize <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "lot_size must be positive, got %v", c.Screener.LotSize)
	}
	if c.Screener.MaxBidAskSpread < 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "max_bid_ask_spread must be non-negative, got %v", c.Screener.MaxBidAskSpread)
	}
	if c.Screener.RiskRewardMultiple <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "risk_reward_multiple must be positive, got %v", c.Screener.RiskRewardMultiple)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(errors.ErrConfigInvalid, "unknown log level %q", c.Logging.Level)
	}
	return nil
}
