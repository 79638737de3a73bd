package repository

import (
	"context"

	"github.com/paulmach/orb/geojson"

	"github.com/paris-green-explorer/internal/domain"
)

// BoundaryRepository - источник контуров (GeoJSON-выгрузки открытых данных)
type BoundaryRepository interface {
	FetchBoundaries(ctx context.Context, kind domain.Kind) (*geojson.FeatureCollection, error)
}
