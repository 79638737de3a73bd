package planting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/domain"
)

const simulation = `{
	"generated_at": "2024-05-01T10:00:00Z",
	"plans": [
		{
			"plan_id": "impact_max",
			"params": {"w_deficit": 0.7, "w_capacity": 0.3},
			"count": 2,
			"results": [
				{"target_type": "road", "target_id": 101, "target_name": "Rue Cler", "zipcode": "75007",
				 "trees_count": 12, "nb_arbres_possible": 20, "features": {"deficit": 0.4},
				 "score_priorite": 0.8, "nb_arbres_recommande": 5},
				{"score_priorite": 0.2}
			]
		},
		{
			"plans_ignored": true,
			"recommendations": [
				{"target_id": "101", "target_name": "Rue Cler", "score_priorite": 0.5, "nb_arbres_recommande": 2}
			]
		}
	]
}`

func TestClient_FetchSimulation(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "arrondissement", q.Get("zone_type"))
		assert.Equal(t, "75007", q.Get("zone_id"))
		assert.Equal(t, "true", q.Get("include_roads"))
		assert.Equal(t, "false", q.Get("use_species_per_ev"))
		assert.Equal(t, "20", q.Get("top_k"))
		assert.Equal(t, "8", q.Get("max_per_road"))
		assert.Equal(t, "impact_max,biodiversite", q.Get("plans"))
		w.Write([]byte(simulation))
	}))
	defer server.Close()

	c := NewPlantingClient(&config.APIConfig{PlantingURL: server.URL, RequestTimeout: 5 * time.Second}, logger)

	sim, err := c.FetchSimulation(context.Background(), domain.NewPlantingParams(domain.ZoneUnit, "75007"))
	require.NoError(t, err)

	assert.Equal(t, domain.ZoneUnit, sim.ZoneType)
	assert.Equal(t, "75007", sim.ZoneID)
	assert.Equal(t, "2024-05-01T10:00:00Z", sim.GeneratedAt)
	require.Len(t, sim.Plans, 2)

	first := sim.Plans[0]
	assert.Equal(t, "impact_max", first.PlanType)
	require.NotNil(t, first.Params)
	assert.Equal(t, 0.7, *first.Params.WDeficit)
	require.Len(t, first.Recommendations, 2)

	rec := first.Recommendations[0]
	assert.Equal(t, "101", rec.TargetID)
	assert.Equal(t, "75007", rec.Zipcode)
	assert.Equal(t, 12, *rec.TreesCount)
	assert.Equal(t, 20, *rec.PossibleTrees)
	assert.Equal(t, 5, rec.RecommendedTrees)

	def := first.Recommendations[1]
	assert.Equal(t, "unknown", def.TargetType)
	assert.Equal(t, "unknown", def.TargetID)
	assert.Equal(t, "Unknown Location", def.TargetName)
	assert.Equal(t, 1, def.RecommendedTrees)

	assert.Equal(t, "unknown", sim.Plans[1].PlanType)
	assert.Len(t, sim.Plans[1].Recommendations, 1)

	assert.Equal(t, 8, sim.Summary.TotalTrees)
	assert.Equal(t, 2, sim.Summary.TotalLocations)
	assert.InDelta(t, 0.5, sim.Summary.AveragePriorityScore, 1e-9)
}

func TestClient_FetchSimulation_Error(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewPlantingClient(&config.APIConfig{PlantingURL: server.URL, RequestTimeout: 5 * time.Second}, logger)

	sim, err := c.FetchSimulation(context.Background(), domain.NewPlantingParams(domain.ZoneDistrict, "26"))
	assert.Error(t, err)
	assert.Nil(t, sim)
}
