package navigator

import "github.com/paris-green-explorer/internal/domain"

// FilterDistricts - кварталы округа. Без округа возвращается весь список.
// Квартал входит в список, если совпадает сверенная ссылка UnitID либо id или название родителя.
func FilterDistricts(all []domain.District, unit *domain.AdministrativeUnit) []domain.District {
	if unit == nil {
		return all
	}
	out := make([]domain.District, 0)
	for _, d := range all {
		if BelongsToUnit(d, *unit) {
			out = append(out, d)
		}
	}
	return out
}

// BelongsToUnit - принадлежит ли квартал округу
func BelongsToUnit(d domain.District, unit domain.AdministrativeUnit) bool {
	if d.UnitID != "" && d.UnitID == unit.ID {
		return true
	}
	return d.Parent.Matches(unit.ID, unit.Name)
}

// FilterGreenSpaces - зеленые зоны квартала. Без квартала возвращается весь список.
func FilterGreenSpaces(all []domain.GreenSpace, district *domain.District) []domain.GreenSpace {
	if district == nil {
		return all
	}
	out := make([]domain.GreenSpace, 0)
	for _, g := range all {
		if BelongsToDistrict(g, *district) {
			out = append(out, g)
		}
	}
	return out
}

// BelongsToDistrict - принадлежит ли зеленая зона кварталу
func BelongsToDistrict(g domain.GreenSpace, district domain.District) bool {
	if g.DistrictID != "" && g.DistrictID == district.ID {
		return true
	}
	return g.Parent.Matches(district.ID, district.Name)
}
