package parisapi

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/infrastructure/remote"
)

type client struct {
	remote  *remote.Client
	baseURL string
	logger  *zap.Logger
}

// NewParisClient создает клиент API географии Парижа
func NewParisClient(cfg *config.APIConfig, logger *zap.Logger) repository.ParisDataRepository {
	return &client{
		remote:  remote.NewClient(cfg.RequestTimeout, logger),
		baseURL: strings.TrimRight(cfg.ParisBaseURL, "/"),
		logger:  logger,
	}
}

func (c *client) fetch(ctx context.Context, path string) ([]map[string]interface{}, error) {
	records, err := c.remote.Records(ctx, c.baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return records, nil
}

// FetchUnits возвращает округа
func (c *client) FetchUnits(ctx context.Context) ([]domain.AdministrativeUnit, error) {
	records, err := c.fetch(ctx, "/arrondissements")
	if err != nil {
		return nil, err
	}
	units := make([]domain.AdministrativeUnit, 0, len(records))
	for _, r := range records {
		units = append(units, normalizeUnit(r))
	}
	return units, nil
}

// FetchDistricts возвращает кварталы
func (c *client) FetchDistricts(ctx context.Context) ([]domain.District, error) {
	records, err := c.fetch(ctx, "/quartiers")
	if err != nil {
		return nil, err
	}
	districts := make([]domain.District, 0, len(records))
	for _, r := range records {
		districts = append(districts, normalizeDistrict(r))
	}
	return districts, nil
}

// FetchGreenSpaces возвращает зеленые зоны
func (c *client) FetchGreenSpaces(ctx context.Context) ([]domain.GreenSpace, error) {
	records, err := c.fetch(ctx, "/espaces-verts")
	if err != nil {
		return nil, err
	}
	spaces := make([]domain.GreenSpace, 0, len(records))
	for _, r := range records {
		spaces = append(spaces, normalizeGreenSpace(r))
	}

	c.logger.Debug("Green spaces normalized", zap.Int("count", len(spaces)))
	return spaces, nil
}
