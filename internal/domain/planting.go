package domain

import (
	"fmt"
	"strings"
)

// ZoneType - тип зоны для симуляции посадок
type ZoneType string

const (
	ZoneUnit       ZoneType = "arrondissement"
	ZoneDistrict   ZoneType = "quartier"
	ZoneGreenSpace ZoneType = "espace_vert"
)

const (
	DefaultPlantingTopK       = 20
	DefaultPlantingMaxPerRoad = 8
	DefaultPlantingPlans      = "impact_max,biodiversite"
)

// PlantingParams - параметры запроса симуляции
type PlantingParams struct {
	ZoneType        ZoneType `json:"zone_type"`
	ZoneID          string   `json:"zone_id"`
	IncludeRoads    bool     `json:"include_roads"`
	UseSpeciesPerEv bool     `json:"use_species_per_ev"`
	TopK            int      `json:"top_k"`
	MaxPerRoad      int      `json:"max_per_road"`
	Plans           string   `json:"plans"`
}

// NewPlantingParams - параметры с умолчаниями для зоны
func NewPlantingParams(zoneType ZoneType, zoneID string) PlantingParams {
	return PlantingParams{
		ZoneType:     zoneType,
		ZoneID:       zoneID,
		IncludeRoads: true,
		TopK:         DefaultPlantingTopK,
		MaxPerRoad:   DefaultPlantingMaxPerRoad,
		Plans:        DefaultPlantingPlans,
	}
}

// Key - стабильный ключ набора параметров для кеша
func (p PlantingParams) Key() string {
	return fmt.Sprintf("%s:%s:%t:%t:%d:%d:%s",
		p.ZoneType, p.ZoneID, p.IncludeRoads, p.UseSpeciesPerEv, p.TopK, p.MaxPerRoad, p.Plans)
}

type RecommendationFeatures struct {
	Deficit      *float64 `json:"deficit,omitempty"`
	CapacityNorm *float64 `json:"capacity_norm,omitempty"`
}

// PlantRecommendation - рекомендация посадки для одной цели
type PlantRecommendation struct {
	TargetType       string                  `json:"target_type"`
	TargetID         string                  `json:"target_id"`
	TargetName       string                  `json:"target_name"`
	Zipcode          string                  `json:"zipcode,omitempty"`
	TreesCount       *int                    `json:"trees_count,omitempty"`
	PossibleTrees    *int                    `json:"possible_trees,omitempty"`
	Features         *RecommendationFeatures `json:"features,omitempty"`
	PriorityScore    float64                 `json:"priority_score"`
	RecommendedTrees int                     `json:"recommended_trees"`
}

type PlanParams struct {
	WDeficit        *float64 `json:"w_deficit,omitempty"`
	WCapacity       *float64 `json:"w_capacity,omitempty"`
	MaxSpeciesShare *float64 `json:"max_species_share,omitempty"`
	TopSpecies      *int     `json:"top_species,omitempty"`
}

type PlantingPlan struct {
	PlanType        string                `json:"plan_type"`
	Params          *PlanParams           `json:"params,omitempty"`
	Count           *int                  `json:"count,omitempty"`
	Recommendations []PlantRecommendation `json:"recommendations"`
}

type PlantingSummary struct {
	TotalTrees           int     `json:"total_trees"`
	TotalLocations       int     `json:"total_locations"`
	AveragePriorityScore float64 `json:"average_priority_score"`
}

// PlantingSimulation - результат симуляции посадок для зоны
type PlantingSimulation struct {
	ZoneType    ZoneType        `json:"zone_type"`
	ZoneID      string          `json:"zone_id"`
	GeneratedAt string          `json:"generated_at,omitempty"`
	Plans       []PlantingPlan  `json:"plans"`
	Summary     PlantingSummary `json:"summary"`
}

// Summarize считает итоги по всем планам
func Summarize(plans []PlantingPlan) PlantingSummary {
	var (
		summary   PlantingSummary
		count     int
		scoreSum  float64
		locations = make(map[string]struct{})
	)
	for _, plan := range plans {
		for _, rec := range plan.Recommendations {
			summary.TotalTrees += rec.RecommendedTrees
			scoreSum += rec.PriorityScore
			locations[rec.TargetID] = struct{}{}
			count++
		}
	}
	summary.TotalLocations = len(locations)
	if count > 0 {
		summary.AveragePriorityScore = scoreSum / float64(count)
	}
	return summary
}

// PlanDisplayName - название плана для панели
func PlanDisplayName(planType string) string {
	switch planType {
	case "impact_max":
		return "Impact Maximum"
	case "biodiversite":
		return "Biodiversité"
	}
	return strings.ReplaceAll(planType, "_", " ")
}

// OtherGroup - группа для рекомендаций без почтового индекса
const OtherGroup = "Autre"
