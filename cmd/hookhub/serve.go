package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/hookhub/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HookHub web server",
	Long: `Load the catalog once from the configured source (builtin, file or redis)
and serve the catalog page, the JSON API and the probe endpoints until
interrupted.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log := setup()
	defer func() { _ = log.Sync() }()

	a, err := app.New(cmd.Context(), cfg, log)
	if err != nil {
		log.Errorf("❌ hookhub failed to start: %v", err)
		return err
	}
	return a.Run()
}
