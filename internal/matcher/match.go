package matcher

import (
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/paris-green-explorer/internal/domain"
)

// UnitCode - числовой код округа из Code, либо из ID (-1 если кода нет)
func UnitCode(u domain.AdministrativeUnit) int {
	code := u.Code
	if code == "" {
		code = u.ID
	}
	return parseCode(code)
}

// featureUnitCode сравнивает код из свойств контура с кодом округа
func featureUnitCode(f *geojson.Feature, code int) bool {
	switch v := firstProperty(f, unitCodeKeys).(type) {
	case float64:
		return int(v) == code && float64(code) == v
	case string:
		parsed := parseCode(v)
		return parsed == code || parsed == 75100+code || parsed == 75000+code
	}
	return false
}

// MatchUnit ищет контур округа по коду
func MatchUnit(u domain.AdministrativeUnit, fc *geojson.FeatureCollection) *geojson.Feature {
	if fc == nil {
		return nil
	}
	code := UnitCode(u)
	if code < 0 {
		return nil
	}
	for _, f := range fc.Features {
		if featureUnitCode(f, code) {
			return f
		}
	}
	return nil
}

// MatchDistrict ищет контур квартала по точному названию без учета регистра
func MatchDistrict(d domain.District, fc *geojson.FeatureCollection) *geojson.Feature {
	if fc == nil || d.Name == "" {
		return nil
	}
	name := strings.ToLower(d.Name)
	for _, f := range fc.Features {
		if firstString(f, districtNameKeys) == name {
			return f
		}
	}
	return nil
}

// MatchGreenSpace ищет контур зеленой зоны: одно название должно содержать другое.
// Для коротких и пересекающихся названий возможны ложные совпадения.
func MatchGreenSpace(g domain.GreenSpace, fc *geojson.FeatureCollection) *geojson.Feature {
	if fc == nil || g.Name == "" {
		return nil
	}
	name := strings.ToLower(g.Name)
	for _, f := range fc.Features {
		featureName := firstString(f, greenSpaceNameKeys)
		if featureName == "" {
			continue
		}
		if strings.Contains(featureName, name) || strings.Contains(name, featureName) {
			return f
		}
	}
	return nil
}

// DistrictFeaturesOfUnit возвращает контуры кварталов, у которых код округа совпадает с кодом округа
func DistrictFeaturesOfUnit(u domain.AdministrativeUnit, fc *geojson.FeatureCollection) []*geojson.Feature {
	if fc == nil {
		return nil
	}
	code := UnitCode(u)
	if code < 0 {
		return nil
	}
	var out []*geojson.Feature
	for _, f := range fc.Features {
		v, ok := firstProperty(f, []string{"c_ar", "code_arr"}).(float64)
		if ok && int(v) == code {
			out = append(out, f)
		}
	}
	return out
}
