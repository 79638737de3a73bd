package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/usecase/dto"
)

func TestFoldText(t *testing.T) {
	assert.Equal(t, "odeon", usecase.FoldText("Odéon"))
	assert.Equal(t, "pere-lachaise", usecase.FoldText("Père-Lachaise"))
	assert.Equal(t, "val-de-grace", usecase.FoldText("VAL-DE-GRÂCE"))
}

func TestSearchCatalog(t *testing.T) {
	catalog := &usecase.Catalog{
		Units: []domain.AdministrativeUnit{
			{ID: "1", Code: "1", Name: "1er Arrondissement"},
			{ID: "12", Code: "12", Name: "12ème Arrondissement"},
			{ID: "13", Code: "13", Name: "13ème Arrondissement"},
			{ID: "14", Code: "14", Name: "14ème Arrondissement"},
		},
		Districts: []domain.District{
			{ID: "q22", Name: "Odéon"},
			{ID: "q16", Name: "Notre-Dame"},
		},
		GreenSpaces: []domain.GreenSpace{
			{ID: "g1", Name: "Square A"}, {ID: "g2", Name: "Square B"}, {ID: "g3", Name: "Square C"},
			{ID: "g4", Name: "Square D"}, {ID: "g5", Name: "Square E"}, {ID: "g6", Name: "Square F"},
		},
	}

	t.Run("short query returns nothing", func(t *testing.T) {
		res := usecase.SearchCatalog(catalog, "o")
		assert.Zero(t, res.Total)
		assert.NotNil(t, res.Units)
	})

	t.Run("accent and case folded", func(t *testing.T) {
		res := usecase.SearchCatalog(catalog, "ODEON")
		require.Len(t, res.Districts, 1)
		assert.Equal(t, "q22", res.Districts[0].ID)
	})

	t.Run("units match by code", func(t *testing.T) {
		res := usecase.SearchCatalog(catalog, "12")
		require.Len(t, res.Units, 1)
		assert.Equal(t, "12", res.Units[0].ID)
	})

	t.Run("caps per kind", func(t *testing.T) {
		res := usecase.SearchCatalog(catalog, "arrondissement")
		assert.Len(t, res.Units, 3)

		res = usecase.SearchCatalog(catalog, "square")
		assert.Len(t, res.GreenSpaces, 5)
		assert.Equal(t, 5, res.Total)
	})
}

func TestSearchUseCase_Search(t *testing.T) {
	tg := newTestGateway(offlineParis(errors.New("offline")), offlineBoundaries(errors.New("offline")))
	uc := usecase.NewSearchUseCase(tg.gateway, zap.NewNop())

	res, err := uc.Search(context.Background(), dto.SearchRequest{Query: "luxembourg"})
	require.NoError(t, err)
	require.Len(t, res.GreenSpaces, 1)
	assert.Equal(t, "ev6", res.GreenSpaces[0].ID)
}
