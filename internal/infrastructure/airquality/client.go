package airquality

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/infrastructure/remote"
)

// ErrNoCurrentData - Open-Meteo не вернул блок current
var ErrNoCurrentData = errors.New("no current air quality data")

const currentFields = "pm10,pm2_5,ozone,nitrogen_dioxide,european_aqi"

type apiCurrent struct {
	Time            string  `json:"time"`
	EuropeanAQI     float64 `json:"european_aqi"`
	PM10            float64 `json:"pm10"`
	PM25            float64 `json:"pm2_5"`
	Ozone           float64 `json:"ozone"`
	NitrogenDioxide float64 `json:"nitrogen_dioxide"`
}

type apiResponse struct {
	Current *apiCurrent `json:"current"`
}

type client struct {
	remote *remote.Client
	url    string
	logger *zap.Logger
}

// NewAirQualityClient создает клиент Open-Meteo Air Quality
func NewAirQualityClient(cfg *config.APIConfig, logger *zap.Logger) repository.AirQualityRepository {
	return &client{
		remote: remote.NewClient(cfg.RequestTimeout, logger),
		url:    cfg.AirQualityURL,
		logger: logger,
	}
}

// FetchCurrent возвращает текущие показатели для точки
func (c *client) FetchCurrent(ctx context.Context, point domain.LatLng) (*domain.AirQuality, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(point.Lng, 'f', -1, 64))
	q.Set("current", currentFields)

	var resp apiResponse
	if err := c.remote.GetJSON(ctx, c.url+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch air quality: %w", err)
	}
	if resp.Current == nil {
		return nil, ErrNoCurrentData
	}

	return &domain.AirQuality{
		EuropeanAQI:     resp.Current.EuropeanAQI,
		PM10:            resp.Current.PM10,
		PM25:            resp.Current.PM25,
		Ozone:           resp.Current.Ozone,
		NitrogenDioxide: resp.Current.NitrogenDioxide,
		Time:            resp.Current.Time,
	}, nil
}
