package pollution

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/infrastructure/remote"
)

type apiRecord struct {
	Zipcode     remote.FlexString `json:"zipcode"`
	NO2Average  float64           `json:"NO2_moyenne"`
	PM10Average float64           `json:"PM10_moyenne"`
	UrbanIndex  float64           `json:"indice_urbain"`
	Level       string            `json:"niveau"`
}

type apiResponse struct {
	Period          string      `json:"periode"`
	UnitsSource     string      `json:"source_arrondissements"`
	PollutionSource string      `json:"source_pollution"`
	UnitsCount      int         `json:"nb_arrondissements"`
	Results         []apiRecord `json:"resultats"`
}

type client struct {
	remote *remote.Client
	url    string
	logger *zap.Logger
}

// NewPollutionClient создает клиент сервиса загрязнения по округам
func NewPollutionClient(cfg *config.APIConfig, logger *zap.Logger) repository.PollutionRepository {
	return &client{
		remote: remote.NewClient(cfg.RequestTimeout, logger),
		url:    cfg.PollutionURL,
		logger: logger,
	}
}

// FetchPollution загружает показатели за период и считает средние по всем округам
func (c *client) FetchPollution(ctx context.Context, startDate, endDate string) (*domain.PollutionData, error) {
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var resp apiResponse
	if err := c.remote.GetJSON(ctx, c.url+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch pollution: %w", err)
	}

	data := &domain.PollutionData{
		Period:  resp.Period,
		Source:  resp.PollutionSource,
		Records: make([]domain.PollutionRecord, 0, len(resp.Results)),
	}

	no2 := make([]float64, 0, len(resp.Results))
	pm10 := make([]float64, 0, len(resp.Results))
	urban := make([]float64, 0, len(resp.Results))
	for _, r := range resp.Results {
		level := r.Level
		if level == "" {
			level = domain.PollutionLevelByPM10(r.PM10Average).Label
		}
		data.Records = append(data.Records, domain.PollutionRecord{
			Zipcode:    r.Zipcode.String(),
			NO2:        r.NO2Average,
			PM10:       r.PM10Average,
			UrbanIndex: r.UrbanIndex,
			Level:      level,
		})
		no2 = append(no2, r.NO2Average)
		pm10 = append(pm10, r.PM10Average)
		urban = append(urban, r.UrbanIndex)
	}

	if len(data.Records) > 0 {
		data.Average = domain.PollutionAverage{
			NO2:        stat.Mean(no2, nil),
			PM10:       stat.Mean(pm10, nil),
			UrbanIndex: stat.Mean(urban, nil),
		}
	}

	c.logger.Debug("Pollution loaded",
		zap.String("period", data.Period),
		zap.Int("records", len(data.Records)))

	return data, nil
}
