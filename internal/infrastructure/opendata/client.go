package opendata

import (
	"context"
	"fmt"
	"strings"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/infrastructure/remote"
)

// datasets - наборы открытых данных Парижа с контурами
var datasets = map[domain.Kind]string{
	domain.KindUnits:       "arrondissements",
	domain.KindDistricts:   "quartier_paris",
	domain.KindGreenSpaces: "espaces_verts",
}

type client struct {
	remote  *remote.Client
	baseURL string
	logger  *zap.Logger
}

// NewOpenDataClient создает клиент GeoJSON-выгрузок opendata.paris.fr
func NewOpenDataClient(cfg *config.APIConfig, logger *zap.Logger) repository.BoundaryRepository {
	return &client{
		remote:  remote.NewClient(cfg.RequestTimeout, logger),
		baseURL: strings.TrimRight(cfg.OpenDataBaseURL, "/"),
		logger:  logger,
	}
}

// ExportURL - адрес GeoJSON-выгрузки набора
func ExportURL(baseURL, dataset string) string {
	return fmt.Sprintf("%s/%s/exports/geojson", strings.TrimRight(baseURL, "/"), dataset)
}

// FetchBoundaries загружает контуры для вида
func (c *client) FetchBoundaries(ctx context.Context, kind domain.Kind) (*geojson.FeatureCollection, error) {
	dataset, ok := datasets[kind]
	if !ok {
		return nil, fmt.Errorf("unknown boundary kind %q", kind)
	}

	body, err := c.remote.Get(ctx, ExportURL(c.baseURL, dataset))
	if err != nil {
		return nil, fmt.Errorf("fetch %s boundaries: %w", dataset, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		c.logger.Warn("Failed to parse boundaries", zap.String("dataset", dataset), zap.Error(err))
		return nil, fmt.Errorf("parse %s boundaries: %w", dataset, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("%s boundaries: %w", dataset, remote.ErrEmptyPayload)
	}

	c.logger.Debug("Boundaries loaded",
		zap.String("dataset", dataset),
		zap.Int("features", len(fc.Features)))

	return fc, nil
}
