package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
)

// sessionCounter - источник числа активных сессий
type sessionCounter interface {
	ActiveSessions() int
}

// StatsUseCase обрабатывает бизнес-логику для статистики
type StatsUseCase struct {
	gateway  *GatewayUseCase
	sessions sessionCounter
	logger   *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(gateway *GatewayUseCase, sessions sessionCounter, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
	}
}

// GetStatistics возвращает сводку по текущему снимку коллекций
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	return uc.statistics(uc.gateway.Snapshot(ctx)), nil
}

// RefreshStatistics принудительно перечитывает коллекции из источников
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.Statistics, error) {
	uc.logger.Info("Refreshing statistics")
	stats := uc.statistics(uc.gateway.Refresh(ctx))
	uc.logger.Info("Statistics refreshed successfully",
		zap.Int("units", stats.Units),
		zap.Int("districts", stats.Districts),
		zap.Int("green_spaces", stats.GreenSpaces),
	)
	return stats, nil
}

func (uc *StatsUseCase) statistics(c *Catalog) *domain.Statistics {
	stats := &domain.Statistics{
		Units:               len(c.Units),
		Districts:           len(c.Districts),
		GreenSpaces:         len(c.GreenSpaces),
		Sources:             c.Sources,
		UnlinkedDistricts:   c.UnlinkedDistricts,
		UnlinkedGreenSpaces: c.UnlinkedGreenSpaces,
		LastUpdated:         c.FetchedAt,
	}
	if uc.sessions != nil {
		stats.ActiveSessions = uc.sessions.ActiveSessions()
	}
	return stats
}
