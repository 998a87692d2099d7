package config

import (
	"os"
	"path/filepath"
	"testing"

	"spread-screener/internal/errors"
)

func TestLoadDefaultsAndTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Screener.LotSize != 25 {
		t.Errorf("lot_size = %v, want 25", cfg.Screener.LotSize)
	}
	if cfg.Screener.MaxBidAskSpread != 2.0 {
		t.Errorf("max_bid_ask_spread = %v, want 2.0", cfg.Screener.MaxBidAskSpread)
	}
	if cfg.Screener.RiskRewardMultiple != 3.0 {
		t.Errorf("risk_reward_multiple = %v, want 3.0", cfg.Screener.RiskRewardMultiple)
	}

	// First run leaves an editable template behind.
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("config template not written: %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "[screener]\nlot_size = 75.0\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Screener.LotSize != 75 {
		t.Errorf("lot_size = %v, want 75", cfg.Screener.LotSize)
	}
	// Unset keys fall back to defaults.
	if cfg.Screener.MaxBidAskSpread != 2.0 {
		t.Errorf("max_bid_ask_spread = %v, want default 2.0", cfg.Screener.MaxBidAskSpread)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCREENER_LOT_SIZE", "50")
	t.Setenv("SCREENER_LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Screener.LotSize != 50 {
		t.Errorf("lot_size = %v, want 50 from env", cfg.Screener.LotSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug from env", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Screener: ScreenerConfig{LotSize: 25, MaxBidAskSpread: 2, RiskRewardMultiple: 3},
		Logging:  LoggingConfig{Level: "info"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lot size", func(c *Config) { c.Screener.LotSize = 0 }},
		{"negative bid/ask ceiling", func(c *Config) { c.Screener.MaxBidAskSpread = -1 }},
		{"zero risk/reward multiple", func(c *Config) { c.Screener.RiskRewardMultiple = 0 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		cfg := *valid
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !errors.Is(err, errors.ErrConfigInvalid) {
			t.Errorf("%s: error %v does not match ErrConfigInvalid", tc.name, err)
		}
	}
}
