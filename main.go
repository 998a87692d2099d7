package main

import (
	"fmt"
	"os"

	"spread-screener/internal/cli"
	"spread-screener/internal/config"
	"spread-screener/internal/logging"
)

func main() {
	cfg, err := config.Load(configDirArg(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "screener: %v\n", err)
		os.Exit(1)
	}

	lc := logging.DefaultLogConfig()
	lc.Level = cfg.Logging.Level
	lc.Console = cfg.Logging.Console
	lc.File = cfg.Logging.File
	logger := logging.NewLoggerWithConfig(lc)

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configDirArg scans for --config before cobra parses flags, since the
// config has to be loaded to build the command tree.
func configDirArg(args []string) string {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if len(a) > len("--config=") && a[:len("--config=")] == "--config=" {
			return a[len("--config="):]
		}
	}
	return ""
}
