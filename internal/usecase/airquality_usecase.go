package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/fallback"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/pkg/metrics"
)

const airQualityKind = "air-quality"

// AirQualityUseCase - текущее качество воздуха для квартала
type AirQualityUseCase struct {
	airRepo repository.AirQualityRepository
	cache   cacheStore
	ttl     time.Duration
	logger  *zap.Logger
}

// NewAirQualityUseCase - создание AirQualityUseCase
func NewAirQualityUseCase(
	airRepo repository.AirQualityRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	ttl time.Duration,
) *AirQualityUseCase {
	return &AirQualityUseCase{
		airRepo: airRepo,
		cache:   newCacheStore(cacheRepo, logger),
		ttl:     ttl,
		logger:  logger,
	}
}

// DistrictPoint - известные координаты квартала, иначе центр Парижа
func DistrictPoint(districtID string) domain.LatLng {
	if p, ok := fallback.DistrictCenter(districtID); ok {
		return p
	}
	return domain.ParisCenter
}

// FetchForDistrict возвращает текущие показатели или nil, если источник недоступен
func (uc *AirQualityUseCase) FetchForDistrict(ctx context.Context, districtID string) *domain.AirQuality {
	return uc.FetchAt(ctx, DistrictPoint(districtID))
}

// FetchAt - текущие показатели в произвольной точке, nil если источник недоступен
func (uc *AirQualityUseCase) FetchAt(ctx context.Context, point domain.LatLng) *domain.AirQuality {
	key := fmt.Sprintf("air-quality:%.4f:%.4f", point.Lat, point.Lng)

	var cached domain.AirQuality
	if uc.cache.load(ctx, key, &cached) {
		metrics.GatewayRequestsTotal.WithLabelValues(airQualityKind, string(domain.SourceCache)).Inc()
		return &cached
	}

	start := time.Now()
	aq, err := uc.airRepo.FetchCurrent(ctx, point)
	metrics.GatewayFetchDurationMs.WithLabelValues(airQualityKind).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		uc.logger.Warn("Air quality unavailable",
			zap.Float64("lat", point.Lat),
			zap.Float64("lng", point.Lng),
			zap.Error(err),
		)
		metrics.GatewayRequestsTotal.WithLabelValues(airQualityKind, string(domain.SourceFallback)).Inc()
		return nil
	}

	metrics.GatewayRequestsTotal.WithLabelValues(airQualityKind, string(domain.SourceLive)).Inc()
	uc.cache.store(ctx, key, aq, uc.ttl)
	return aq
}
