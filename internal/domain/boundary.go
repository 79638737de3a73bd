package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// IsArea - контур пригоден для отображения и проверки попадания точки
func IsArea(g orb.Geometry) bool {
	switch g.(type) {
	case orb.Polygon, orb.MultiPolygon:
		return true
	}
	return false
}

// FeatureProperty возвращает первое непустое значение из списка ключей
func FeatureProperty(f *geojson.Feature, keys ...string) interface{} {
	if f == nil {
		return nil
	}
	for _, k := range keys {
		if v, ok := f.Properties[k]; ok && v != nil && v != "" {
			return v
		}
	}
	return nil
}

// EmptyCollection - пустая коллекция границ (никогда не nil)
func EmptyCollection() *geojson.FeatureCollection {
	return geojson.NewFeatureCollection()
}
