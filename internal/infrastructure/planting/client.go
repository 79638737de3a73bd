package planting

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/infrastructure/remote"
)

type apiRecommendation struct {
	TargetType       string                         `json:"target_type"`
	TargetID         remote.FlexString              `json:"target_id"`
	TargetName       string                         `json:"target_name"`
	Zipcode          remote.FlexString              `json:"zipcode"`
	TreesCount       *float64                       `json:"trees_count"`
	PossibleTrees    *float64                       `json:"nb_arbres_possible"`
	Features         *domain.RecommendationFeatures `json:"features"`
	PriorityScore    float64                        `json:"score_priorite"`
	RecommendedTrees float64                        `json:"nb_arbres_recommande"`
}

type apiPlan struct {
	PlanID          string              `json:"plan_id"`
	Params          *domain.PlanParams  `json:"params"`
	Count           *int                `json:"count"`
	Results         []apiRecommendation `json:"results"`
	Recommendations []apiRecommendation `json:"recommendations"`
}

type apiResponse struct {
	GeneratedAt string    `json:"generated_at"`
	Plans       []apiPlan `json:"plans"`
}

const (
	unknownTarget     = "unknown"
	unknownTargetName = "Unknown Location"
)

type client struct {
	remote *remote.Client
	url    string
	logger *zap.Logger
}

// NewPlantingClient создает клиент сервиса симуляции посадок
func NewPlantingClient(cfg *config.APIConfig, logger *zap.Logger) repository.PlantingRepository {
	return &client{
		remote: remote.NewClient(cfg.RequestTimeout, logger),
		url:    cfg.PlantingURL,
		logger: logger,
	}
}

// Query - строка запроса для набора параметров
func Query(p domain.PlantingParams) url.Values {
	q := url.Values{}
	q.Set("zone_type", string(p.ZoneType))
	q.Set("zone_id", p.ZoneID)
	q.Set("include_roads", strconv.FormatBool(p.IncludeRoads))
	q.Set("use_species_per_ev", strconv.FormatBool(p.UseSpeciesPerEv))
	q.Set("top_k", strconv.Itoa(p.TopK))
	q.Set("max_per_road", strconv.Itoa(p.MaxPerRoad))
	q.Set("plans", p.Plans)
	return q
}

// FetchSimulation запрашивает симуляцию и считает сводку по рекомендациям
func (c *client) FetchSimulation(ctx context.Context, params domain.PlantingParams) (*domain.PlantingSimulation, error) {
	var resp apiResponse
	if err := c.remote.GetJSON(ctx, c.url+"?"+Query(params).Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch planting simulation: %w", err)
	}

	plans := make([]domain.PlantingPlan, 0, len(resp.Plans))
	for _, p := range resp.Plans {
		results := p.Results
		if len(results) == 0 {
			results = p.Recommendations
		}
		planType := p.PlanID
		if planType == "" {
			planType = unknownTarget
		}

		recs := make([]domain.PlantRecommendation, 0, len(results))
		for _, r := range results {
			recs = append(recs, toRecommendation(r))
		}
		plans = append(plans, domain.PlantingPlan{
			PlanType:        planType,
			Params:          p.Params,
			Count:           p.Count,
			Recommendations: recs,
		})
	}

	sim := &domain.PlantingSimulation{
		ZoneType:    params.ZoneType,
		ZoneID:      params.ZoneID,
		GeneratedAt: resp.GeneratedAt,
		Plans:       plans,
		Summary:     domain.Summarize(plans),
	}

	c.logger.Debug("Planting simulation loaded",
		zap.String("zone_type", string(params.ZoneType)),
		zap.String("zone_id", params.ZoneID),
		zap.Int("plans", len(plans)),
		zap.Int("total_trees", sim.Summary.TotalTrees))

	return sim, nil
}

func toRecommendation(r apiRecommendation) domain.PlantRecommendation {
	rec := domain.PlantRecommendation{
		TargetType:       r.TargetType,
		TargetID:         r.TargetID.String(),
		TargetName:       r.TargetName,
		Zipcode:          r.Zipcode.String(),
		TreesCount:       intPtr(r.TreesCount),
		PossibleTrees:    intPtr(r.PossibleTrees),
		Features:         r.Features,
		PriorityScore:    r.PriorityScore,
		RecommendedTrees: int(r.RecommendedTrees),
	}
	if rec.TargetType == "" {
		rec.TargetType = unknownTarget
	}
	if rec.TargetID == "" {
		rec.TargetID = unknownTarget
	}
	if rec.TargetName == "" {
		rec.TargetName = unknownTargetName
	}
	if rec.RecommendedTrees == 0 {
		rec.RecommendedTrees = 1
	}
	return rec
}

func intPtr(v *float64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
