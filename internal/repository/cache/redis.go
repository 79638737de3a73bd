package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/pkg/logger"
)

const (
	connectAttempts = 3
	connectBackoff  = 500 * time.Millisecond
)

// Redis - общее подключение к Redis для кеша шлюзов и cmd/worker
type Redis struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedis - подключение с таймаутами из конфига и несколькими попытками ping
func NewRedis(cfg *config.RedisConfig, log *zap.Logger) (*Redis, error) {
	log = logger.Component(log, "redis")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		ClientName:   logger.ServiceName,
	})

	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = client.Ping(ctx).Err()
		cancel()
		if err == nil {
			break
		}
		log.Warn("Redis ping failed",
			zap.String("addr", cfg.Addr()),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < connectAttempts {
			time.Sleep(connectBackoff * time.Duration(attempt))
		}
	}
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr(), err)
	}

	log.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize),
		zap.String("key_prefix", cfg.KeyPrefix),
	)

	return &Redis{
		client: client,
		prefix: cfg.KeyPrefix,
		logger: log,
	}, nil
}

func (r *Redis) Close() error {
	stats := r.client.PoolStats()
	r.logger.Info("Closing Redis connection",
		zap.Uint32("hits", stats.Hits),
		zap.Uint32("misses", stats.Misses),
		zap.Uint32("timeouts", stats.Timeouts),
	)
	return r.client.Close()
}

// Health - проверка для /api/v1/health
func (r *Redis) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
