package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

// ErrCatalogIncomplete is returned when the order list references a hook
// whose data key is missing.
var ErrCatalogIncomplete = errors.New("catalog in redis is incomplete")

// Meta describes the catalog currently stored in Redis.
type Meta struct {
	Count     int
	UpdatedAt time.Time
}

// Store handles Redis operations for the hook catalog
type Store struct {
	client redis.UniversalClient
}

// NewStore creates a new Redis store
func NewStore(client redis.UniversalClient) *Store {
	return &Store{
		client: client,
	}
}

// maxSaveAttempts bounds the retries of SaveCatalog when another writer
// changes the catalog order between WATCH and EXEC.
const maxSaveAttempts = 5

// SaveCatalog replaces the stored catalog with hooks, atomically.
// Keys of hooks that are no longer part of the catalog are removed. The
// order list is watched, so a concurrent save makes this one retry against
// the new order instead of leaving orphaned hook keys.
func (s *Store) SaveCatalog(ctx context.Context, hooks []domain.Hook) error {
	payloads := make([][]byte, len(hooks))
	ids := make([]interface{}, len(hooks))
	for i, h := range hooks {
		data, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("failed to marshal hook %s: %w", h.ID, err)
		}
		payloads[i] = data
		ids[i] = h.ID
	}

	save := func(tx *redis.Tx) error {
		previous, err := tx.LRange(ctx, CatalogOrderKey(), 0, -1).Result()
		if err != nil {
			return fmt.Errorf("failed to read catalog order: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, id := range staleHookIDs(previous, hooks) {
				pipe.Del(ctx, HookKey(id))
			}
			pipe.Del(ctx, CatalogOrderKey())
			for i, h := range hooks {
				pipe.Set(ctx, HookKey(h.ID), payloads[i], 0)
			}
			if len(ids) > 0 {
				pipe.RPush(ctx, CatalogOrderKey(), ids...)
			}
			pipe.HSet(ctx, CatalogMetaKey(),
				"count", len(hooks),
				"updated_at", time.Now().UTC().Format(time.RFC3339))
			return nil
		})
		return err
	}

	var err error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		err = s.client.Watch(ctx, save, CatalogOrderKey())
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	return nil
}

// staleHookIDs returns the ids of previous that hooks no longer contains.
func staleHookIDs(previous []string, hooks []domain.Hook) []string {
	keep := make(map[string]bool, len(hooks))
	for _, h := range hooks {
		keep[h.ID] = true
	}
	var stale []string
	for _, id := range previous {
		if !keep[id] {
			stale = append(stale, id)
		}
	}
	return stale
}

// LoadCatalog returns the stored catalog in display order.
// An empty result with a nil error means nothing has been stored yet.
func (s *Store) LoadCatalog(ctx context.Context) ([]domain.Hook, error) {
	ids, err := s.client.LRange(ctx, CatalogOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog order: %w", err)
	}

	if len(ids) == 0 {
		return []domain.Hook{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = HookKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get hooks: %w", err)
	}

	hooks := make([]domain.Hook, 0, len(ids))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: missing hook %s", ErrCatalogIncomplete, ids[i])
		}
		var h domain.Hook
		if err := json.Unmarshal([]byte(raw), &h); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hook %s: %w", ids[i], err)
		}
		hooks = append(hooks, h)
	}

	return hooks, nil
}

// Meta reads the catalog metadata. A zero Meta is returned when the catalog
// was never saved.
func (s *Store) Meta(ctx context.Context) (Meta, error) {
	fields, err := s.client.HGetAll(ctx, CatalogMetaKey()).Result()
	if err != nil {
		return Meta{}, fmt.Errorf("failed to read catalog meta: %w", err)
	}
	return parseMeta(fields)
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func parseMeta(fields map[string]string) (Meta, error) {
	var m Meta
	if v, ok := fields["count"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Meta{}, fmt.Errorf("invalid catalog count %q: %w", v, err)
		}
		m.Count = n
	}
	if v, ok := fields["updated_at"]; ok {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Meta{}, fmt.Errorf("invalid catalog updated_at %q: %w", v, err)
		}
		m.UpdatedAt = ts
	}
	return m, nil
}
