package matcher

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/fallback"
)

const (
	// DistrictOffset и GreenSpaceOffset - шаг спирали в градусах
	DistrictOffset   = 0.005
	GreenSpaceOffset = 0.003

	goldenAngleDeg = 137.5
)

// BoundsCenter - центр ограничивающего прямоугольника; false для пустой или нечисловой геометрии
func BoundsCenter(g orb.Geometry) (domain.LatLng, bool) {
	if g == nil {
		return domain.LatLng{}, false
	}
	b := g.Bound()
	if b.IsEmpty() || !finite(b.Min) || !finite(b.Max) {
		return domain.LatLng{}, false
	}
	c := b.Center()
	return domain.LatLng{Lat: c.Lat(), Lng: c.Lon()}, true
}

func finite(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsInf(p[0], 0) && !math.IsNaN(p[1]) && !math.IsInf(p[1], 0)
}

// Spiral - детерминированная точка на спирали с золотым углом вокруг base
func Spiral(base domain.LatLng, index int, offset float64) domain.LatLng {
	angle := float64(index) * goldenAngleDeg * math.Pi / 180
	radius := math.Sqrt(float64(index)+1) * offset * 0.5
	return domain.LatLng{
		Lat: base.Lat + math.Cos(angle)*radius,
		Lng: base.Lng + math.Sin(angle)*radius,
	}
}

// ParentCenter - центр округа из таблицы, иначе центр Парижа
func ParentCenter(u *domain.AdministrativeUnit) domain.LatLng {
	if u == nil {
		return domain.ParisCenter
	}
	if c, ok := fallback.UnitCenter(u.CenterKey()); ok {
		return c
	}
	return domain.ParisCenter
}

func featureGeometry(f *geojson.Feature) orb.Geometry {
	if f == nil {
		return nil
	}
	return f.Geometry
}

// DistrictCoordinate - точка маркера квартала: центр контура, иначе спираль
func DistrictCoordinate(matched *geojson.Feature, index int, base domain.LatLng) domain.LatLng {
	if c, ok := BoundsCenter(featureGeometry(matched)); ok {
		return c
	}
	return Spiral(base, index, DistrictOffset)
}

// GreenSpaceCoordinate - собственный контур, контур из выгрузки, координаты источника, спираль
func GreenSpaceCoordinate(g domain.GreenSpace, matched *geojson.Feature, index int, base domain.LatLng) domain.LatLng {
	var geom orb.Geometry
	if g.Geometry != nil {
		geom = g.Geometry.Geometry()
	} else {
		geom = featureGeometry(matched)
	}
	if c, ok := BoundsCenter(geom); ok {
		return c
	}
	if g.Location != nil && finite(g.Location.Point()) {
		return *g.Location
	}
	return Spiral(base, index, GreenSpaceOffset)
}

// ContainingFeature - первый контур (Polygon или MultiPolygon), содержащий точку
func ContainingFeature(fc *geojson.FeatureCollection, p domain.LatLng) *geojson.Feature {
	if fc == nil {
		return nil
	}
	pt := p.Point()
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			if planar.PolygonContains(g, pt) {
				return f
			}
		case orb.MultiPolygon:
			if planar.MultiPolygonContains(g, pt) {
				return f
			}
		}
	}
	return nil
}
