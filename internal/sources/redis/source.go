// Package redis loads the catalog from Redis, seeding it from the built-in
// data set when the store is empty.
package redis

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/hookhub/internal/catalog"
	"github.com/MrSnakeDoc/hookhub/internal/domain"
	"github.com/MrSnakeDoc/hookhub/internal/logger"
)

// CatalogStore is the subset of the Redis store the source needs.
type CatalogStore interface {
	LoadCatalog(ctx context.Context) ([]domain.Hook, error)
	SaveCatalog(ctx context.Context, hooks []domain.Hook) error
}

// Source reads the catalog from Redis once at startup.
type Source struct {
	store       CatalogStore
	logger      logger.Logger
	seedOnEmpty bool
}

// NewSource creates a Redis-backed catalog source. When seedOnEmpty is true
// and Redis holds no catalog, the built-in one is stored and served.
func NewSource(store CatalogStore, log logger.Logger, seedOnEmpty bool) *Source {
	return &Source{
		store:       store,
		logger:      log,
		seedOnEmpty: seedOnEmpty,
	}
}

func (s *Source) Name() string { return catalog.SourceRedis }

// Load returns the stored catalog after validating it.
func (s *Source) Load(ctx context.Context) ([]domain.Hook, error) {
	s.logger.Info("loading catalog from redis")

	hooks, err := s.store.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if len(hooks) == 0 {
		if !s.seedOnEmpty {
			return nil, fmt.Errorf("no catalog found in redis: %w", catalog.ErrEmptyCatalog)
		}
		s.logger.Info("no catalog found in redis, seeding built-in catalog")
		if err := Seed(ctx, s.store, catalog.Default()); err != nil {
			return nil, err
		}
		return catalog.Default(), nil
	}

	if err := catalog.Validate(hooks); err != nil {
		return nil, fmt.Errorf("invalid catalog in redis: %w", err)
	}

	s.logger.Info("loaded catalog from redis",
		logger.Int("count", len(hooks)))

	return hooks, nil
}

// Seed validates hooks and replaces the catalog stored in Redis with them.
func Seed(ctx context.Context, store CatalogStore, hooks []domain.Hook) error {
	if err := catalog.Validate(hooks); err != nil {
		return fmt.Errorf("refusing to seed invalid catalog: %w", err)
	}
	if err := store.SaveCatalog(ctx, hooks); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
