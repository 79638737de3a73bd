package parisapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/infrastructure/remote"
)

func newTestClient(t *testing.T, routes map[string]string) *client {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	cfg := &config.APIConfig{ParisBaseURL: server.URL + "/", RequestTimeout: 5 * time.Second}
	return NewParisClient(cfg, logger).(*client)
}

func TestClient_FetchUnits(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/arrondissements": `{"data": [
			{"zipcode": 75007, "zonename": "Palais-Bourbon", "population": 48000, "superficie": 4090000, "c_arinsee": 75107},
			{"c_ar": 1, "l_ar": "1er Ardt", "area": "1824612.8"},
			{"c_ar": 12}
		]}`,
	})

	units, err := c.FetchUnits(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 3)

	assert.Equal(t, "75007", units[0].ID)
	assert.Equal(t, "7", units[0].Code)
	assert.Equal(t, "75007", units[0].Zipcode)
	assert.Equal(t, "Palais-Bourbon", units[0].Name)
	require.NotNil(t, units[0].Population)
	assert.Equal(t, 48000, *units[0].Population)
	assert.Equal(t, "75107", units[0].Attachments["c_arinsee"])

	assert.Equal(t, "1", units[1].ID)
	assert.Equal(t, "1", units[1].Code)
	assert.Equal(t, "1er Ardt", units[1].Name)
	require.NotNil(t, units[1].Area)
	assert.InDelta(t, 1824612.8, *units[1].Area, 1e-6)

	assert.Equal(t, "12ème Arrondissement", units[2].Name)
	assert.Nil(t, units[2].Population)
}

func TestClient_FetchDistricts(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/quartiers": `[
			{"c_qu": 26, "l_qu": "Invalides", "c_ar": 7, "c_quinsee": 7510702},
			{"id": "q1", "nom": "Halles", "arrondissement_id": "1", "arrondissement": "1er Arrondissement"}
		]`,
	})

	districts, err := c.FetchDistricts(context.Background())
	require.NoError(t, err)
	require.Len(t, districts, 2)

	assert.Equal(t, "26", districts[0].ID)
	assert.Equal(t, "Invalides", districts[0].Name)
	assert.Equal(t, "7", districts[0].Parent.ID)
	assert.Equal(t, "7ème Arrondissement", districts[0].Parent.Name)
	assert.Equal(t, "7510702", districts[0].Attachments["c_quinsee"])

	assert.Equal(t, "q1", districts[1].ID)
	assert.Equal(t, "1er Arrondissement", districts[1].Parent.Name)
}

func TestClient_FetchGreenSpaces(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/espaces-verts": `[
			{
				"nsq_espace_vert": 1234,
				"nom_ev": "SQUARE DU TEMPLE",
				"type_ev": "Squares",
				"adresse_codepostal": "75003",
				"surface_totale_reelle": 7700,
				"horaires_ouverture": "8h-20h",
				"categorie": "Square",
				"lat": 48.8643,
				"lng": "2.3607",
				"geom": "{\"type\":\"Polygon\",\"coordinates\":[[[2.36,48.86],[2.37,48.86],[2.37,48.87],[2.36,48.86]]]}"
			},
			{"id": "ev2", "nom": "Jardin", "geom": "{broken", "quartier": "Archives"},
			{"id": "ev3", "nom": "Point", "geom": "{\"type\":\"Point\",\"coordinates\":[2.3,48.8]}"}
		]`,
	})

	spaces, err := c.FetchGreenSpaces(context.Background())
	require.NoError(t, err)
	require.Len(t, spaces, 3)

	g := spaces[0]
	assert.Equal(t, "1234", g.ID)
	assert.Equal(t, "SQUARE DU TEMPLE", g.Name)
	assert.Equal(t, "Squares", g.Type)
	assert.Equal(t, "75003", g.Address)
	require.NotNil(t, g.Area)
	assert.Equal(t, 7700.0, *g.Area)
	assert.Equal(t, "8h-20h", g.Hours)
	require.NotNil(t, g.Location)
	assert.Equal(t, 48.8643, g.Location.Lat)
	assert.Equal(t, 2.3607, g.Location.Lng)
	require.NotNil(t, g.Geometry)
	_, ok := g.Geometry.Geometry().(orb.Polygon)
	assert.True(t, ok)
	assert.Equal(t, "Square", g.Attachments["categorie"])

	assert.Nil(t, spaces[1].Geometry, "parse errors are ignored")
	assert.Equal(t, "Espace vert", spaces[1].Type)
	assert.Equal(t, "Archives", spaces[1].Parent.Name)
	assert.Nil(t, spaces[1].Location)

	assert.Nil(t, spaces[2].Geometry, "only polygons are kept")
}

func TestClient_Errors(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/quartiers": `{"data": []}`,
	})

	_, err := c.FetchDistricts(context.Background())
	assert.ErrorIs(t, err, remote.ErrEmptyPayload)

	_, err = c.FetchUnits(context.Background())
	assert.ErrorIs(t, err, remote.ErrUnexpectedStatus)
}

func TestTrimCode(t *testing.T) {
	assert.Equal(t, "1", trimCode("01"))
	assert.Equal(t, "12", trimCode("12"))
	assert.Equal(t, "0", trimCode("00"))
	assert.Equal(t, "", trimCode(""))
}
