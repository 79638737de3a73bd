package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/navigator"
	"github.com/paris-green-explorer/internal/pkg/errors"
	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/usecase/dto"
)

func TestPanelUseCase_PanelDate(t *testing.T) {
	uc := usecase.NewPanelUseCase(nil, nil, nil, nil, zap.NewNop())
	today := time.Now().Format(time.DateOnly)

	got, err := uc.PanelDate("")
	require.NoError(t, err)
	assert.Equal(t, today, got)

	got, err = uc.PanelDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got)

	_, err = uc.PanelDate(time.Now().AddDate(0, 0, 2).Format(time.DateOnly))
	assert.ErrorIs(t, err, errors.ErrInvalidDate)

	_, err = uc.PanelDate("01/03/2024")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)
}

func TestBuildPanel(t *testing.T) {
	unit := domain.AdministrativeUnit{ID: "5", Code: "5", Name: "5ème Arrondissement", Population: intPtr(56000)}
	district := domain.District{ID: "q18", Name: "Jardin des Plantes", UnitID: "5"}
	green := domain.GreenSpace{
		ID:          "ev4",
		Name:        "Jardin des Plantes",
		DistrictID:  "q18",
		Type:        "Jardin",
		Area:        floatPtr(235000),
		Attachments: domain.Attachments{"categorie": "Jardin botanique"},
	}
	catalog := &usecase.Catalog{
		Units:       []domain.AdministrativeUnit{unit},
		Districts:   []domain.District{district, {ID: "q17", Name: "Saint-Victor", UnitID: "5"}},
		GreenSpaces: []domain.GreenSpace{green},
	}

	t.Run("city lists units", func(t *testing.T) {
		p := usecase.BuildPanel(navigator.Initial(), catalog)
		assert.Equal(t, "Paris", p.Title)
		assert.Len(t, p.Breadcrumbs, 1)
		require.Len(t, p.Children, 1)
		assert.Equal(t, domain.KindUnits, p.Children[0].Kind)
	})

	t.Run("unit lists its districts", func(t *testing.T) {
		p := usecase.BuildPanel(navigator.Initial().SelectUnit(unit), catalog)
		assert.Equal(t, "Quartiers", p.Title)
		assert.Len(t, p.Children, 2)
		assert.Contains(t, p.Attributes, dto.Attribute{Label: "Population", Value: "56000"})
	})

	t.Run("green space shows attributes", func(t *testing.T) {
		st, err := navigator.Initial().SelectUnit(unit).SelectDistrict(district)
		require.NoError(t, err)
		st, err = st.SelectGreenSpace(green)
		require.NoError(t, err)

		p := usecase.BuildPanel(st, catalog)
		assert.Equal(t, "Espaces Verts", p.Title)
		require.Len(t, p.Breadcrumbs, 4)
		assert.Equal(t, "Jardin des Plantes", p.Breadcrumbs[3].Label)
		assert.Equal(t, []dto.Attribute{
			{Label: "Type", Value: "Jardin"},
			{Label: "Superficie", Value: "235000 m²"},
			{Label: "categorie", Value: "Jardin botanique"},
		}, p.Attributes)
		assert.Empty(t, p.Children)
	})
}

func TestBuildPlantingPanel_GroupsByZipcode(t *testing.T) {
	sim := &domain.PlantingSimulation{
		Plans: []domain.PlantingPlan{{
			PlanType: "biodiversite",
			Recommendations: []domain.PlantRecommendation{
				{TargetID: "a", Zipcode: "75012"},
				{TargetID: "b"},
				{TargetID: "c", Zipcode: "75005"},
				{TargetID: "d", Zipcode: "75012"},
			},
		}},
	}

	panel := usecase.BuildPlantingPanel(domain.NewPlantingParams(domain.ZoneUnit, "75012"), sim)
	require.Len(t, panel.Plans, 1)

	plan := panel.Plans[0]
	assert.Equal(t, "Biodiversité", plan.DisplayName)
	require.Len(t, plan.Groups, 3)
	assert.Equal(t, "75005", plan.Groups[0].Zipcode)
	assert.Equal(t, "75012", plan.Groups[1].Zipcode)
	assert.Len(t, plan.Groups[1].Recommendations, 2)
	assert.Equal(t, domain.OtherGroup, plan.Groups[2].Zipcode)
}

func TestBuildPollutionPanel(t *testing.T) {
	data := &domain.PollutionData{
		Records: []domain.PollutionRecord{
			{Zipcode: "75001", PM10: 18},
			{Zipcode: "75007", PM10: 44, Level: "Élevé"},
		},
		Average: domain.PollutionAverage{PM10: 31},
	}

	p := usecase.BuildPollutionPanel("2024-05-01", data, domain.AdministrativeUnit{ID: "7", Code: "7"})
	require.NotNil(t, p.Record)
	assert.Equal(t, "75007", p.Record.Zipcode)
	require.NotNil(t, p.Level)
	assert.Equal(t, "Modéré", p.Level.Label)

	empty := usecase.BuildPollutionPanel("2024-05-01", nil, domain.AdministrativeUnit{ID: "7"})
	assert.Nil(t, empty.Level)
	assert.Equal(t, "2024-05-01", empty.Date)
}

func TestPanelUseCase_Panel(t *testing.T) {
	ctx := context.Background()
	offline := stderrors.New("offline")
	tg := newTestGateway(offlineParis(offline), offlineBoundaries(offline))
	logger := zap.NewNop()

	pollutionRepo := &MockPollutionRepository{}
	pollutionRepo.On("FetchPollution", mock.Anything, "2024-05-01", "2024-05-01").Return(&domain.PollutionData{
		Records: []domain.PollutionRecord{{Zipcode: "75007", PM10: 15}},
		Average: domain.PollutionAverage{PM10: 15},
	}, nil)

	airRepo := &MockAirQualityRepository{}
	airRepo.On("FetchCurrent", mock.Anything, mock.Anything).Return(&domain.AirQuality{EuropeanAQI: 35}, nil)

	explorer := usecase.NewExplorerUseCase(tg.gateway, tg.boundaries,
		usecase.NewPlantingUseCase(&MockPlantingRepository{}, nil, logger, time.Minute), logger, time.Hour)
	uc := usecase.NewPanelUseCase(
		explorer,
		tg.gateway,
		usecase.NewPollutionUseCase(pollutionRepo, nil, tg.feed, logger, time.Minute),
		usecase.NewAirQualityUseCase(airRepo, nil, logger, time.Minute),
		logger,
	)

	id := explorer.CreateSession().SessionID
	_, err := explorer.SelectUnit(ctx, id, "7")
	require.NoError(t, err)
	_, err = explorer.SelectDistrict(ctx, id, "q28")
	require.NoError(t, err)

	panel, err := uc.Panel(ctx, id, dto.PanelRequest{Date: "2024-05-01"})
	require.NoError(t, err)

	require.NotNil(t, panel.Pollution)
	assert.Equal(t, "Faible", panel.Pollution.Level.Label)
	assert.Equal(t, "75007", panel.Pollution.Record.Zipcode)

	require.NotNil(t, panel.AirQuality)
	assert.Equal(t, "Bon", panel.AirQuality.Level.Label)

	_, err = uc.Panel(ctx, "missing", dto.PanelRequest{})
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
