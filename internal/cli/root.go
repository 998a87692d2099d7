// Package cli provides the command-line interface for the spread screener.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"spread-screener/internal/config"
	"spread-screener/internal/logging"
	"spread-screener/internal/screener"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Engine *screener.Engine
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Engine: screener.New(screener.Config{
			LotSize:            cfg.Screener.LotSize,
			MaxBidAskSpread:    cfg.Screener.MaxBidAskSpread,
			RiskRewardMultiple: cfg.Screener.RiskRewardMultiple,
		}),
	}

	rootCmd := &cobra.Command{
		Use:   "screener",
		Short: "Credit spread screener for options chains",
		Long: `Spread Screener derives credit-spread candidates from an options-chain
snapshot: it pairs out-of-the-money strikes into bear call and bull put
spreads, computes each candidate's economics, and applies the requested
liquidity and risk/reward screens.

Use 'screener help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/spread-screener)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newScreenCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Spread Screener v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Screener Configuration")
	output.Printf("  Lot Size:             %.0f\n", cfg.Screener.LotSize)
	output.Printf("  Max Bid/Ask Spread:   %.2f\n", cfg.Screener.MaxBidAskSpread)
	output.Printf("  Risk/Reward Multiple: %.1fx\n", cfg.Screener.RiskRewardMultiple)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:   %s\n", cfg.Logging.Level)
	output.Printf("  Console: %v\n", cfg.Logging.Console)
	output.Printf("  File:    %v\n", cfg.Logging.File)

	return nil
}
