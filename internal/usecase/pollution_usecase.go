package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/pkg/errors"
	"github.com/paris-green-explorer/internal/pkg/metrics"
)

// DefaultPollutionWindow - период по умолчанию, если границы не заданы
const DefaultPollutionWindow = 180 * 24 * time.Hour

const pollutionKind = "pollution"

// PollutionUseCase - загрязнение по округам за период
type PollutionUseCase struct {
	pollutionRepo repository.PollutionRepository
	cache         cacheStore
	feed          *NotificationUseCase
	ttl           time.Duration
	now           func() time.Time
	logger        *zap.Logger
}

// NewPollutionUseCase - создание PollutionUseCase
func NewPollutionUseCase(
	pollutionRepo repository.PollutionRepository,
	cacheRepo repository.CacheRepository,
	feed *NotificationUseCase,
	logger *zap.Logger,
	ttl time.Duration,
) *PollutionUseCase {
	return &PollutionUseCase{
		pollutionRepo: pollutionRepo,
		cache:         newCacheStore(cacheRepo, logger),
		feed:          feed,
		ttl:           ttl,
		now:           time.Now,
		logger:        logger,
	}
}

// Period подставляет умолчания: конец - сегодня, начало - 180 дней назад
func (uc *PollutionUseCase) Period(startDate, endDate string) (string, string, error) {
	today := uc.now()
	if endDate == "" {
		endDate = today.Format(time.DateOnly)
	}
	if startDate == "" {
		startDate = today.Add(-DefaultPollutionWindow).Format(time.DateOnly)
	}

	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return "", "", errors.ErrInvalidDate.WithDetails(map[string]interface{}{"start_date": startDate})
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return "", "", errors.ErrInvalidDate.WithDetails(map[string]interface{}{"end_date": endDate})
	}
	if end.Before(start) {
		return "", "", errors.ErrInvalidDate.WithDetails(map[string]interface{}{
			"start_date": startDate,
			"end_date":   endDate,
		})
	}
	return startDate, endDate, nil
}

// FetchPollution возвращает данные за период или nil, если источник недоступен
func (uc *PollutionUseCase) FetchPollution(ctx context.Context, startDate, endDate string) (*domain.PollutionData, error) {
	start, end, err := uc.Period(startDate, endDate)
	if err != nil {
		return nil, err
	}

	key := "pollution:" + start + ":" + end

	var cached domain.PollutionData
	if uc.cache.load(ctx, key, &cached) {
		metrics.GatewayRequestsTotal.WithLabelValues(pollutionKind, string(domain.SourceCache)).Inc()
		return &cached, nil
	}

	began := time.Now()
	data, err := uc.pollutionRepo.FetchPollution(ctx, start, end)
	metrics.GatewayFetchDurationMs.WithLabelValues(pollutionKind).Observe(float64(time.Since(began).Milliseconds()))
	if err != nil {
		uc.logger.Warn("Pollution data unavailable",
			zap.String("start_date", start),
			zap.String("end_date", end),
			zap.Error(err),
		)
		if uc.feed != nil {
			uc.feed.Unavailable(pollutionKind, err)
		}
		metrics.GatewayRequestsTotal.WithLabelValues(pollutionKind, string(domain.SourceFallback)).Inc()
		return nil, nil
	}

	metrics.GatewayRequestsTotal.WithLabelValues(pollutionKind, string(domain.SourceLive)).Inc()
	uc.cache.store(ctx, key, data, uc.ttl)
	return data, nil
}
