package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/pkg/metrics"
)

const backendMemory = "memory"

// memoryRepository - кеш в памяти процесса, когда Redis не настроен
type memoryRepository struct {
	items  *ttlcache.Cache[string, []byte]
	logger *zap.Logger
}

// NewMemoryCacheRepository создает кеш в памяти с той же семантикой TTL, что у Redis
func NewMemoryCacheRepository(logger *zap.Logger) repository.CacheRepository {
	return newMemoryRepository(logger)
}

func newMemoryRepository(logger *zap.Logger) *memoryRepository {
	// окно свежести не продлевается при чтении
	items := ttlcache.New[string, []byte](
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	return &memoryRepository{
		items:  items,
		logger: logger,
	}
}

func (r *memoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	item := r.items.Get(key)
	if item == nil || item.IsExpired() {
		metrics.CacheLookupsTotal.WithLabelValues(backendMemory, metrics.LookupLabel(false)).Inc()
		return nil, nil
	}

	metrics.CacheLookupsTotal.WithLabelValues(backendMemory, metrics.LookupLabel(true)).Inc()
	r.logger.Debug("Cache hit", zap.String("key", key))
	return cloneBytes(item.Value()), nil
}

func (r *memoryRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	r.items.Set(key, cloneBytes(value), ttl)

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, key string) error {
	r.items.Delete(key)
	return nil
}

func (r *memoryRepository) Exists(ctx context.Context, key string) (bool, error) {
	item := r.items.Get(key)
	return item != nil && !item.IsExpired(), nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
