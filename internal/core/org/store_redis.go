package org

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/f3nation/f3api/internal/platform/constants"
	"github.com/f3nation/f3api/pkg/pointer"
)

// CachedRepository is a read-through cache around an org Repository.
//
// Orgs sit on every request path (pax, events, and locations are all scoped
// by org) yet change rarely, so id and slug lookups are served from Redis
// with a short TTL. Upserts write through and invalidate both keys. Cache
// failures degrade to the inner repository; they are logged, never surfaced.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	logger *slog.Logger
}

func NewCachedRepository(inner Repository, client *redis.Client, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

func (repository *CachedRepository) GetByID(ctx context.Context, id string) (*Org, error) {
	key := constants.RedisPrefixOrgByID + id

	if cached := repository.fetch(ctx, key); cached != nil {
		return cached, nil
	}

	found, err := repository.inner.GetByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}

	repository.store(ctx, key, found)
	return found, nil
}

func (repository *CachedRepository) GetBySlug(ctx context.Context, slug string) (*Org, error) {
	key := constants.RedisPrefixOrgBySlug + slug

	if cached := repository.fetch(ctx, key); cached != nil {
		return cached, nil
	}

	found, err := repository.inner.GetBySlug(ctx, slug)
	if err != nil || found == nil {
		return found, err
	}

	repository.store(ctx, key, found)
	return found, nil
}

// ListByType is not cached; listings are rarer than point lookups and
// invalidating them precisely would need per-type key tracking.
func (repository *CachedRepository) ListByType(ctx context.Context, orgType string, parent ParentFilter) ([]*Org, error) {
	return repository.inner.ListByType(ctx, orgType, parent)
}

func (repository *CachedRepository) Upsert(ctx context.Context, o *Org) error {
	if err := repository.inner.Upsert(ctx, o); err != nil {
		return err
	}

	// Drop both lookup keys so the next read repopulates from storage
	keys := []string{constants.RedisPrefixOrgByID + o.ID}
	if slug := pointer.Val(o.Slug); slug != "" {
		keys = append(keys, constants.RedisPrefixOrgBySlug+slug)
	}

	if err := repository.client.Del(ctx, keys...).Err(); err != nil {
		repository.logger.Warn("org_cache_invalidate_failed",
			slog.String("org_id", o.ID),
			slog.Any("error", err),
		)
	}
	return nil
}

func (repository *CachedRepository) fetch(ctx context.Context, key string) *Org {
	payload, err := repository.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			repository.logger.Warn("org_cache_read_failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
		return nil
	}

	o := &Org{}
	if err := json.Unmarshal(payload, o); err != nil {
		repository.logger.Warn("org_cache_decode_failed", slog.String("key", key))
		return nil
	}
	return o
}

func (repository *CachedRepository) store(ctx context.Context, key string, o *Org) {
	payload, err := json.Marshal(o)
	if err != nil {
		return
	}

	if err := repository.client.Set(ctx, key, payload, constants.OrgCacheTTL).Err(); err != nil {
		repository.logger.Warn("org_cache_write_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
