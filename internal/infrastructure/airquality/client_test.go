package airquality

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

func TestClient_FetchCurrent(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("current block", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "48.8566", q.Get("latitude"))
			assert.Equal(t, "2.3522", q.Get("longitude"))
			assert.Equal(t, currentFields, q.Get("current"))
			w.Write([]byte(`{"current":{"time":"2024-05-01T10:00","european_aqi":35,"pm10":18.2,"pm2_5":9.1,"ozone":60,"nitrogen_dioxide":22.4}}`))
		}))
		defer server.Close()

		c := NewAirQualityClient(&config.APIConfig{AirQualityURL: server.URL, RequestTimeout: 5 * time.Second}, logger)

		aq, err := c.FetchCurrent(context.Background(), domain.ParisCenter)
		require.NoError(t, err)
		assert.Equal(t, 35.0, aq.EuropeanAQI)
		assert.Equal(t, 9.1, aq.PM25)
		assert.Equal(t, "2024-05-01T10:00", aq.Time)
	})

	t.Run("missing current", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"latitude":48.86}`))
		}))
		defer server.Close()

		c := NewAirQualityClient(&config.APIConfig{AirQualityURL: server.URL, RequestTimeout: 5 * time.Second}, logger)

		_, err := c.FetchCurrent(context.Background(), domain.ParisCenter)
		assert.ErrorIs(t, err, ErrNoCurrentData)
	})
}
