// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taibuivan/catalog/internal/platform/constants"
)

// # Redis List Cache

// RedisListCache implements [ListCache] as one JSON value under a fixed key.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListCache creates a Redis-backed [ListCache] whose entries expire after ttl.
func NewRedisListCache(client *redis.Client, ttl time.Duration) *RedisListCache {
	return &RedisListCache{client: client, ttl: ttl}
}

/*
Load reads the cached list.

Returns:
  - []*Country: The cached list, nil on a miss
  - bool: Whether the key was present
  - error: Connectivity or decoding failures
*/
func (cache *RedisListCache) Load(context context.Context) ([]*Country, bool, error) {
	payload, err := cache.client.Get(context, constants.RedisKeyActiveCountries).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_country_list_get_failed: %w", err)
	}

	var countries []*Country
	if err := json.Unmarshal(payload, &countries); err != nil {
		return nil, false, fmt.Errorf("redis_country_list_decode_failed: %w", err)
	}

	return countries, true, nil
}

// Generation reads the invalidation counter. A missing key is generation 0.
func (cache *RedisListCache) Generation(context context.Context) (int64, error) {
	generation, err := cache.client.Get(context, constants.RedisKeyCountriesGeneration).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_country_generation_get_failed: %w", err)
	}
	return generation, nil
}

/*
Store writes the list with the configured TTL if generation is still current.

Description: The generation key is WATCHed, so an Invalidate that runs
between the check and the SET aborts the transaction instead of letting the
stale list through.
*/
func (cache *RedisListCache) Store(context context.Context, generation int64, countries []*Country) (bool, error) {
	payload, err := json.Marshal(countries)
	if err != nil {
		return false, fmt.Errorf("redis_country_list_encode_failed: %w", err)
	}

	stored := false
	err = cache.client.Watch(context, func(tx *redis.Tx) error {
		current, err := tx.Get(context, constants.RedisKeyCountriesGeneration).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(context, func(pipe redis.Pipeliner) error {
			pipe.Set(context, constants.RedisKeyActiveCountries, payload, cache.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, constants.RedisKeyCountriesGeneration)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis_country_list_set_failed: %w", err)
	}
	return stored, nil
}

// Invalidate advances the generation and deletes the list in one transaction.
func (cache *RedisListCache) Invalidate(context context.Context) error {
	_, err := cache.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Incr(context, constants.RedisKeyCountriesGeneration)
		pipe.Del(context, constants.RedisKeyActiveCountries)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_country_list_invalidate_failed: %w", err)
	}
	return nil
}

// # Caching Repository

/*
CachedRepository decorates a [Repository] with a read-through [ListCache].

Description: ListActive is served from the cache when possible and
repopulates it on a miss. Every successful write invalidates the cache. A
repopulation is dropped when a write invalidated the cache while the
database was being read.
Cache failures are logged and never surface to the caller; reads fall back
to the wrapped repository.
*/
type CachedRepository struct {
	Repository
	cache  ListCache
	logger *slog.Logger
}

// NewCachedRepository wraps next with cache.
func NewCachedRepository(next Repository, cache ListCache, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{Repository: next, cache: cache, logger: logger}
}

func (repository *CachedRepository) ListActive(context context.Context) ([]*Country, error) {
	cached, ok, err := repository.cache.Load(context)
	if err != nil {
		repository.logger.Warn("country_cache_load_failed", slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	// Taken before the read so that any write committed after it is noticed.
	generation, generationErr := repository.cache.Generation(context)

	countries, err := repository.Repository.ListActive(context)
	if err != nil {
		return nil, err
	}

	if generationErr != nil {
		repository.logger.Warn("country_cache_generation_failed", slog.Any("error", generationErr))
		return countries, nil
	}

	stored, err := repository.cache.Store(context, generation, countries)
	switch {
	case err != nil:
		repository.logger.Warn("country_cache_store_failed", slog.Any("error", err))
	case !stored:
		repository.logger.Debug("country_cache_store_skipped", slog.Int64("generation", generation))
	}
	return countries, nil
}

func (repository *CachedRepository) Create(context context.Context, c *Country) error {
	if err := repository.Repository.Create(context, c); err != nil {
		return err
	}
	repository.invalidate(context)
	return nil
}

func (repository *CachedRepository) Rename(context context.Context, id int, name string) error {
	if err := repository.Repository.Rename(context, id, name); err != nil {
		return err
	}
	repository.invalidate(context)
	return nil
}

func (repository *CachedRepository) SoftDelete(context context.Context, id int) error {
	if err := repository.Repository.SoftDelete(context, id); err != nil {
		return err
	}
	repository.invalidate(context)
	return nil
}

func (repository *CachedRepository) invalidate(context context.Context) {
	if err := repository.cache.Invalidate(context); err != nil {
		repository.logger.Warn("country_cache_invalidate_failed", slog.Any("error", err))
	}
}
