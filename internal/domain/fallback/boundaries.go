package fallback

import (
	"embed"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/paris-green-explorer/internal/domain"
)

//go:embed arrondissements.geojson
var boundariesFS embed.FS

// Boundaries возвращает запасные контуры для вида: приблизительные шестиугольники
// для округов, пустые коллекции для кварталов и зеленых зон
func Boundaries(kind domain.Kind) *geojson.FeatureCollection {
	if kind != domain.KindUnits {
		return domain.EmptyCollection()
	}
	fc, err := unitBoundaries()
	if err != nil {
		// встроенный файл проверяется тестом, сюда попадать не должны
		return domain.EmptyCollection()
	}
	return fc
}

func unitBoundaries() (*geojson.FeatureCollection, error) {
	data, err := boundariesFS.ReadFile("arrondissements.geojson")
	if err != nil {
		return nil, fmt.Errorf("reading embedded geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing geojson: %w", err)
	}
	return fc, nil
}
