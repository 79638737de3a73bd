package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/pkg/metrics"
)

// DefaultKeyPrefix - пространство имен ключей сервиса в общем Redis
const DefaultKeyPrefix = "explorer:"

const backendRedis = "redis"

type cacheRepository struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewCacheRepository - окна свежести шлюзов поверх общего Redis.
// Ключи шлюзов (collection:units, boundary:districts, ...) хранятся под префиксом из конфига.
func NewCacheRepository(conn *Redis) repository.CacheRepository {
	return newCacheRepository(conn.Client(), conn.prefix, conn.logger)
}

func newCacheRepository(client *redis.Client, prefix string, logger *zap.Logger) *cacheRepository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &cacheRepository{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (r *cacheRepository) key(k string) string {
	return r.prefix + k
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheLookupsTotal.WithLabelValues(backendRedis, metrics.LookupLabel(false)).Inc()
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to read gateway cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}

	metrics.CacheLookupsTotal.WithLabelValues(backendRedis, metrics.LookupLabel(true)).Inc()
	r.logger.Debug("Cache hit", zap.String("key", key), zap.Int("bytes", len(val)))
	return val, nil
}

// Set - ttl <= 0 хранит запись без срока, как и в памяти процесса
func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		r.logger.Error("Failed to write gateway cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("Failed to drop gateway cache entry", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("cache exists %s: %w", key, err)
	}
	return n > 0, nil
}
