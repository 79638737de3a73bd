package usecase

import "github.com/paris-green-explorer/internal/domain"

// ReconcileResult - коллекции с нормализованными ссылками на родителей
type ReconcileResult struct {
	Districts           []domain.District
	GreenSpaces         []domain.GreenSpace
	UnlinkedDistricts   int
	UnlinkedGreenSpaces int
}

// Reconcile вычисляет одну ссылку на родителя для каждого квартала и зеленой зоны.
// Ссылка ищется по id и по названию; при расхождении побеждает название.
// Исходные срезы не изменяются.
func Reconcile(units []domain.AdministrativeUnit, districts []domain.District, greenSpaces []domain.GreenSpace) ReconcileResult {
	unitByID := make(map[string]string, len(units))
	unitByName := make(map[string]string, len(units))
	for _, u := range units {
		unitByID[u.ID] = u.ID
		if _, dup := unitByName[u.Name]; u.Name != "" && !dup {
			unitByName[u.Name] = u.ID
		}
	}

	res := ReconcileResult{
		Districts:   make([]domain.District, len(districts)),
		GreenSpaces: make([]domain.GreenSpace, len(greenSpaces)),
	}

	districtByID := make(map[string]string, len(districts))
	districtByName := make(map[string]string, len(districts))
	for i, d := range districts {
		d.UnitID = resolveParent(d.Parent, unitByID, unitByName)
		if d.UnitID == "" {
			res.UnlinkedDistricts++
		}
		res.Districts[i] = d

		districtByID[d.ID] = d.ID
		if _, dup := districtByName[d.Name]; d.Name != "" && !dup {
			districtByName[d.Name] = d.ID
		}
	}

	for i, g := range greenSpaces {
		g.DistrictID = resolveParent(g.Parent, districtByID, districtByName)
		if g.DistrictID == "" {
			res.UnlinkedGreenSpaces++
		}
		res.GreenSpaces[i] = g
	}

	return res
}

func resolveParent(ref domain.ParentRef, byID, byName map[string]string) string {
	var idMatch, nameMatch string
	if ref.ID != "" {
		idMatch = byID[ref.ID]
	}
	if ref.Name != "" {
		nameMatch = byName[ref.Name]
	}
	if nameMatch != "" {
		return nameMatch
	}
	return idMatch
}
