package matcher_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/matcher"
)

func feature(props map[string]interface{}) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{{{2.3, 48.8}, {2.31, 48.8}, {2.31, 48.81}, {2.3, 48.8}}})
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}

func collection(features ...*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(f)
	}
	return fc
}

func TestMatchUnit(t *testing.T) {
	seven := domain.AdministrativeUnit{ID: "7", Code: "7"}

	tests := []struct {
		name  string
		props map[string]interface{}
		match bool
	}{
		{name: "numeric c_ar", props: map[string]interface{}{"c_ar": float64(7)}, match: true},
		{name: "prefixed string", props: map[string]interface{}{"c_ar": "75107"}, match: true},
		{name: "short prefixed string", props: map[string]interface{}{"code_arr": "75007"}, match: true},
		{name: "insee key", props: map[string]interface{}{"c_arinsee": float64(7)}, match: true},
		{name: "plain string", props: map[string]interface{}{"c_ar": "7"}, match: true},
		{name: "other number", props: map[string]interface{}{"c_ar": float64(17)}, match: false},
		{name: "other prefixed", props: map[string]interface{}{"c_ar": "75117"}, match: false},
		{name: "no code", props: map[string]interface{}{"l_ar": "7ème Ardt"}, match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := feature(tt.props)
			got := matcher.MatchUnit(seven, collection(f))
			if tt.match {
				assert.Same(t, f, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestMatchUnit_CodeFromIDAndFirstWins(t *testing.T) {
	first := feature(map[string]interface{}{"c_ar": float64(12)})
	second := feature(map[string]interface{}{"c_ar": "75112"})

	got := matcher.MatchUnit(domain.AdministrativeUnit{ID: "75012"}, collection(first, second))
	assert.Nil(t, got, "id 75012 parses to 75012, not 12")

	got = matcher.MatchUnit(domain.AdministrativeUnit{ID: "12e"}, collection(first, second))
	assert.Same(t, first, got)

	assert.Nil(t, matcher.MatchUnit(domain.AdministrativeUnit{ID: "x"}, collection(first)))
	assert.Nil(t, matcher.MatchUnit(domain.AdministrativeUnit{Code: "1"}, nil))
}

func TestMatchDistrict(t *testing.T) {
	f := feature(map[string]interface{}{"l_qu": "Saint-Germain-des-Prés"})
	byNom := feature(map[string]interface{}{"nom": "Odéon"})
	fc := collection(f, byNom)

	assert.Same(t, f, matcher.MatchDistrict(domain.District{Name: "saint-germain-des-prés"}, fc))
	assert.Same(t, byNom, matcher.MatchDistrict(domain.District{Name: "ODÉON"}, fc))
	assert.Nil(t, matcher.MatchDistrict(domain.District{Name: "Saint-Germain"}, fc), "exact match only")
	assert.Nil(t, matcher.MatchDistrict(domain.District{}, fc))
}

func TestMatchGreenSpace(t *testing.T) {
	long := feature(map[string]interface{}{"nom_ev": "JARDIN DU LUXEMBOURG - ENTREE MEDICIS"})
	short := feature(map[string]interface{}{"nom": "Parc"})
	unnamed := feature(map[string]interface{}{"nom": ""})

	assert.Same(t, long, matcher.MatchGreenSpace(domain.GreenSpace{Name: "Jardin du Luxembourg"}, collection(unnamed, long)))
	assert.Same(t, short, matcher.MatchGreenSpace(domain.GreenSpace{Name: "Parc Monceau"}, collection(short)),
		"feature name contained in entity name is accepted")
	assert.Nil(t, matcher.MatchGreenSpace(domain.GreenSpace{Name: "Square"}, collection(unnamed)))
	assert.Nil(t, matcher.MatchGreenSpace(domain.GreenSpace{}, collection(long)))
}

func TestDistrictFeaturesOfUnit(t *testing.T) {
	a := feature(map[string]interface{}{"c_ar": float64(5), "l_qu": "Sorbonne"})
	b := feature(map[string]interface{}{"c_ar": float64(6), "l_qu": "Odéon"})
	c := feature(map[string]interface{}{"code_arr": float64(5), "l_qu": "Val-de-Grâce"})

	got := matcher.DistrictFeaturesOfUnit(domain.AdministrativeUnit{Code: "5"}, collection(a, b, c))
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, c, got[1])
}
