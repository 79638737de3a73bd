package usecase

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/pkg/metrics"
)

// cacheStore - JSON-обертка над CacheRepository. Ошибки кеша не прерывают запрос.
type cacheStore struct {
	repo   repository.CacheRepository
	logger *zap.Logger
}

func newCacheStore(repo repository.CacheRepository, logger *zap.Logger) cacheStore {
	return cacheStore{repo: repo, logger: logger}
}

// load - true, если ключ найден и значение декодировано в out
func (s cacheStore) load(ctx context.Context, key string, out interface{}) bool {
	if s.repo == nil {
		return false
	}
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		metrics.CacheErrorsTotal.Inc()
		s.logger.Warn("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("Failed to decode cached value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s cacheStore) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.repo == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode value for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.repo.Set(ctx, key, data, ttl); err != nil {
		metrics.CacheErrorsTotal.Inc()
		s.logger.Warn("Failed to cache value", zap.String("key", key), zap.Error(err))
	}
}

func (s cacheStore) invalidate(ctx context.Context, keys ...string) {
	if s.repo == nil {
		return
	}
	for _, key := range keys {
		if err := s.repo.Delete(ctx, key); err != nil {
			metrics.CacheErrorsTotal.Inc()
			s.logger.Warn("Failed to invalidate cache", zap.String("key", key), zap.Error(err))
		}
	}
}
