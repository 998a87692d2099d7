package config

import (
	"os"
	"path/filepath"
)

const configTemplate = `# Spread Screener configuration

[screener]
# Units per options contract; multiplies per-unit premiums into currency.
lot_size = 25.0
# Absolute ceiling on |ask - bid| for the liquidity screen.
max_bid_ask_spread = 2.0
# Max loss may not exceed this multiple of max profit when the
# risk/reward screen is enabled.
risk_reward_multiple = 3.0

[ui]
color_enabled = true

[logging]
# debug, info, warn, error
level = "info"
console = false
file = true
`

// writeTemplateConfig writes a starter config.toml so a first run leaves
// something editable behind. Existing files are never overwritten.
func writeTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0644)
}
