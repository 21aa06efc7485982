package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/hookhub/internal/config"
	"github.com/MrSnakeDoc/hookhub/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "hookhub",
	Short: "A curated catalog of Claude Code hooks",
	Long: `HookHub serves a browsable catalog of community hooks for Claude Code,
filterable by category.

Without a subcommand, hookhub starts the web server (same as "hookhub serve").
Configuration is read from HOOKHUB_* environment variables.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration and the matching logger.
// config.Load panics on an invalid environment.
func setup() (*config.Config, logger.Logger) {
	cfg := config.Load()
	return cfg, logger.New(cfg.LogLevel, cfg.PrettyLog)
}
