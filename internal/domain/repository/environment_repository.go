package repository

import (
	"context"

	"github.com/paris-green-explorer/internal/domain"
)

// PollutionRepository - данные о загрязнении по округам за период
type PollutionRepository interface {
	// FetchPollution принимает даты в формате YYYY-MM-DD
	FetchPollution(ctx context.Context, startDate, endDate string) (*domain.PollutionData, error)
}

// PlantingRepository - сервис симуляции посадок деревьев
type PlantingRepository interface {
	FetchSimulation(ctx context.Context, params domain.PlantingParams) (*domain.PlantingSimulation, error)
}

// AirQualityRepository - текущее качество воздуха в точке
type AirQualityRepository interface {
	FetchCurrent(ctx context.Context, point domain.LatLng) (*domain.AirQuality, error)
}
