package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/pkg/metrics"
)

const plantingKind = "planting"

// PlantingUseCase - симуляция посадок деревьев по зоне
type PlantingUseCase struct {
	plantingRepo repository.PlantingRepository
	cache        cacheStore
	group        singleflight.Group
	ttl          time.Duration
	logger       *zap.Logger
}

// NewPlantingUseCase - создание PlantingUseCase
func NewPlantingUseCase(
	plantingRepo repository.PlantingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	ttl time.Duration,
) *PlantingUseCase {
	return &PlantingUseCase{
		plantingRepo: plantingRepo,
		cache:        newCacheStore(cacheRepo, logger),
		ttl:          ttl,
		logger:       logger,
	}
}

// FetchPlanting возвращает симуляцию для набора параметров или nil при ошибке источника
func (uc *PlantingUseCase) FetchPlanting(ctx context.Context, params domain.PlantingParams) *domain.PlantingSimulation {
	if params.ZoneID == "" {
		return nil
	}
	params = withPlantingDefaults(params)
	key := "planting:" + params.Key()

	var cached domain.PlantingSimulation
	if uc.cache.load(ctx, key, &cached) {
		metrics.GatewayRequestsTotal.WithLabelValues(plantingKind, string(domain.SourceCache)).Inc()
		return &cached
	}

	v, _, _ := uc.group.Do(key, func() (interface{}, error) {
		fetchCtx := context.WithoutCancel(ctx)
		start := time.Now()

		sim, err := uc.plantingRepo.FetchSimulation(fetchCtx, params)
		metrics.GatewayFetchDurationMs.WithLabelValues(plantingKind).Observe(float64(time.Since(start).Milliseconds()))
		if err != nil {
			uc.logger.Warn("Planting simulation unavailable",
				zap.String("zone_type", string(params.ZoneType)),
				zap.String("zone_id", params.ZoneID),
				zap.Error(err),
			)
			return (*domain.PlantingSimulation)(nil), nil
		}

		uc.cache.store(fetchCtx, key, sim, uc.ttl)
		return sim, nil
	})

	sim := v.(*domain.PlantingSimulation)
	source := domain.SourceLive
	if sim == nil {
		source = domain.SourceFallback
	}
	metrics.GatewayRequestsTotal.WithLabelValues(plantingKind, string(source)).Inc()
	return sim
}

// withPlantingDefaults заполняет незаданные числовые параметры и список планов
func withPlantingDefaults(p domain.PlantingParams) domain.PlantingParams {
	if p.TopK <= 0 {
		p.TopK = domain.DefaultPlantingTopK
	}
	if p.MaxPerRoad <= 0 {
		p.MaxPerRoad = domain.DefaultPlantingMaxPerRoad
	}
	if p.Plans == "" {
		p.Plans = domain.DefaultPlantingPlans
	}
	return p
}
