package repository

import (
	"context"

	"github.com/paris-green-explorer/internal/domain"
)

// ParisDataRepository - удаленный источник округов, кварталов и зеленых зон
type ParisDataRepository interface {
	// FetchUnits возвращает нормализованный список округов
	FetchUnits(ctx context.Context) ([]domain.AdministrativeUnit, error)

	// FetchDistricts возвращает нормализованный список кварталов
	FetchDistricts(ctx context.Context) ([]domain.District, error)

	// FetchGreenSpaces возвращает нормализованный список зеленых зон
	FetchGreenSpaces(ctx context.Context) ([]domain.GreenSpace, error)
}
