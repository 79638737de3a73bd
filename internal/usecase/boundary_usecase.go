package usecase

import (
	"context"
	"time"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/fallback"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/pkg/metrics"
)

// boundaryEnvelope - формат записи контуров в кеше
type boundaryEnvelope struct {
	Source     domain.DataSource          `json:"source"`
	Collection *geojson.FeatureCollection `json:"collection"`
}

// BoundaryUseCase - контуры округов, кварталов и зеленых зон с окном свежести 24 часа
type BoundaryUseCase struct {
	boundaryRepo repository.BoundaryRepository
	cache        cacheStore
	group        singleflight.Group
	ttl          time.Duration
	logger       *zap.Logger
}

// NewBoundaryUseCase - создание BoundaryUseCase
func NewBoundaryUseCase(
	boundaryRepo repository.BoundaryRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	ttl time.Duration,
) *BoundaryUseCase {
	return &BoundaryUseCase{
		boundaryRepo: boundaryRepo,
		cache:        newCacheStore(cacheRepo, logger),
		ttl:          ttl,
		logger:       logger,
	}
}

func boundaryKey(kind domain.Kind) string {
	return "boundaries:" + string(kind)
}

// FetchBoundaries возвращает контуры вида kind. Результат никогда не nil:
// при ошибке источника отдаются приближенные контуры округов или пустая коллекция.
func (uc *BoundaryUseCase) FetchBoundaries(ctx context.Context, kind domain.Kind) (*geojson.FeatureCollection, domain.DataSource) {
	key := boundaryKey(kind)

	var cached boundaryEnvelope
	if uc.cache.load(ctx, key, &cached) && cached.Collection != nil {
		source := domain.SourceCache
		if cached.Source == domain.SourceFallback {
			source = domain.SourceFallback
		}
		metrics.GatewayRequestsTotal.WithLabelValues(key, string(source)).Inc()
		return cached.Collection, source
	}

	v, _, _ := uc.group.Do(key, func() (interface{}, error) {
		fetchCtx := context.WithoutCancel(ctx)
		start := time.Now()

		fc, err := uc.boundaryRepo.FetchBoundaries(fetchCtx, kind)
		metrics.GatewayFetchDurationMs.WithLabelValues(key).Observe(float64(time.Since(start).Milliseconds()))

		env := boundaryEnvelope{Source: domain.SourceLive, Collection: fc}
		if err != nil || fc == nil {
			uc.logger.Info("Using fallback boundaries",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
			env = boundaryEnvelope{Source: domain.SourceFallback, Collection: fallback.Boundaries(kind)}
		} else {
			uc.logger.Debug("Boundaries fetched",
				zap.String("kind", string(kind)),
				zap.Int("features", len(fc.Features)),
			)
		}

		uc.cache.store(fetchCtx, key, env, uc.ttl)
		return env, nil
	})

	env := v.(boundaryEnvelope)
	metrics.GatewayRequestsTotal.WithLabelValues(key, string(env.Source)).Inc()
	return env.Collection, env.Source
}
