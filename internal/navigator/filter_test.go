package navigator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/navigator"
)

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func districtID(d domain.District) string {
	return d.ID
}

func greenSpaceID(g domain.GreenSpace) string {
	return g.ID
}

func TestFilterDistricts_DualKey(t *testing.T) {
	all := []domain.District{
		{ID: "q25", Parent: domain.ParentRef{ID: "7"}},
		{ID: "q26", Parent: domain.ParentRef{ID: "99", Name: "7ème Arrondissement"}},
		{ID: "q29", Parent: domain.ParentRef{ID: "8", Name: "8ème Arrondissement"}},
		{ID: "q30", Parent: domain.ParentRef{}},
	}

	got := navigator.FilterDistricts(all, &unit7)
	assert.Equal(t, []string{"q25", "q26"}, ids(got, districtID), "stale id with matching name is kept")

	assert.Len(t, navigator.FilterDistricts(all, nil), 4)
	assert.Empty(t, navigator.FilterDistricts(all, &domain.AdministrativeUnit{ID: "20", Name: "20ème Arrondissement"}))
}

func TestFilterDistricts_ResolvedOrRawKey(t *testing.T) {
	all := []domain.District{
		{ID: "q26", Parent: domain.ParentRef{ID: "7", Name: "8ème Arrondissement"}, UnitID: "8"},
		{ID: "q27", Parent: domain.ParentRef{Name: "nothing"}, UnitID: "7"},
	}

	assert.Equal(t, []string{"q26", "q27"}, ids(navigator.FilterDistricts(all, &unit7), districtID), "id key still links q26 to unit 7")
	assert.Equal(t, []string{"q26"}, ids(navigator.FilterDistricts(all, &unit8), districtID))
}

func TestFilterGreenSpaces(t *testing.T) {
	all := []domain.GreenSpace{
		{ID: "ev7", Parent: domain.ParentRef{ID: "q26"}},
		{ID: "ev8", Parent: domain.ParentRef{ID: "q1", Name: "Invalides"}},
		{ID: "ev9", Parent: domain.ParentRef{ID: "q32", Name: "Europe"}},
		{ID: "ev10", DistrictID: "q26"},
	}

	assert.Equal(t, []string{"ev7", "ev8", "ev10"}, ids(navigator.FilterGreenSpaces(all, &invalides), greenSpaceID))
	assert.Len(t, navigator.FilterGreenSpaces(all, nil), 4)
}

func TestFilterGreenSpaces_ConflictingKeys(t *testing.T) {
	europe := domain.District{ID: "q32", Name: "Europe"}
	all := []domain.GreenSpace{
		{ID: "ev11", Parent: domain.ParentRef{ID: "q26", Name: "Europe"}, DistrictID: "q32"},
	}

	assert.Len(t, navigator.FilterGreenSpaces(all, &invalides), 1)
	assert.Len(t, navigator.FilterGreenSpaces(all, &europe), 1)
}
