package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/hookhub/internal/app"
	"github.com/MrSnakeDoc/hookhub/internal/catalog"
	"github.com/MrSnakeDoc/hookhub/internal/domain"
	redissource "github.com/MrSnakeDoc/hookhub/internal/sources/redis"
	"github.com/MrSnakeDoc/hookhub/internal/sources/yamlfile"
	redisstore "github.com/MrSnakeDoc/hookhub/internal/store/redis"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store a catalog in Redis",
	Long: `Replace the catalog stored in Redis (HOOKHUB_REDIS_ADDR) with the built-in
one, or with the catalog read from --file. Instances started with
HOOKHUB_CATALOG_SOURCE=redis serve it on their next start.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML catalog file to seed instead of the built-in catalog")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, log := setup()
	defer func() { _ = log.Sync() }()

	hooks, err := seedHooks(ctx, seedFile)
	if err != nil {
		return err
	}

	client, err := app.ConnectRedis(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := redissource.Seed(ctx, redisstore.NewStore(client), hooks); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d hooks into redis at %s\n", len(hooks), cfg.RedisAddr)
	return err
}

func seedHooks(ctx context.Context, path string) ([]domain.Hook, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return yamlfile.NewLoader(path).Load(ctx)
}
