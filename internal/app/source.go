package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/hookhub/internal/catalog"
	"github.com/MrSnakeDoc/hookhub/internal/config"
	"github.com/MrSnakeDoc/hookhub/internal/domain"
	"github.com/MrSnakeDoc/hookhub/internal/logger"
	"github.com/MrSnakeDoc/hookhub/internal/redis"
	redissource "github.com/MrSnakeDoc/hookhub/internal/sources/redis"
	"github.com/MrSnakeDoc/hookhub/internal/sources/yamlfile"
	redisstore "github.com/MrSnakeDoc/hookhub/internal/store/redis"
)

// ConnectRedis opens a client for the configured Redis, retrying until it
// answers or the connect timeout expires.
func ConnectRedis(ctx context.Context, cfg *config.Config, log logger.Logger) (*goredis.Client, error) {
	if err := cfg.RequireRedis(); err != nil {
		return nil, err
	}

	return redis.New(ctx, redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, log)
}

// Catalog is a loaded catalog together with the resources its source holds.
type Catalog struct {
	Hooks  []domain.Hook
	Source string
	Store  *redisstore.Store // nil unless Source is redis
	client *goredis.Client
}

// Close releases the Redis client, if any.
func (c *Catalog) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// LoadCatalog builds the configured source and loads the catalog from it once.
func LoadCatalog(ctx context.Context, cfg *config.Config, log logger.Logger) (*Catalog, error) {
	var (
		src    catalog.Source
		out    = &Catalog{}
		client *goredis.Client
	)

	switch cfg.CatalogSource {
	case catalog.SourceFile:
		src = yamlfile.NewLoader(cfg.CatalogFile)
	case catalog.SourceRedis:
		var err error
		client, err = ConnectRedis(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		out.client = client
		out.Store = redisstore.NewStore(client)
		src = redissource.NewSource(out.Store, log, cfg.SeedOnEmpty)
	default:
		src = catalog.NewBuiltin()
	}

	hooks, err := src.Load(ctx)
	if err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("failed to load catalog from %s source: %w", src.Name(), err)
	}

	out.Hooks = hooks
	out.Source = src.Name()
	return out, nil
}
