package dto

import (
	"github.com/paulmach/orb/geojson"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/navigator"
)

// SearchResponse - результаты поиска, сгруппированные по видам
type SearchResponse struct {
	Units       []domain.AdministrativeUnit `json:"units"`
	Districts   []domain.District           `json:"districts"`
	GreenSpaces []domain.GreenSpace         `json:"green_spaces"`
	Total       int                         `json:"total"`
}

// SessionResponse - состояние сессии после перехода
type SessionResponse struct {
	SessionID string          `json:"session_id"`
	State     navigator.State `json:"state"`
}

// Marker - сущность, показанная точкой на карте
type Marker struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Kind domain.Kind `json:"kind"`
	Lat  float64     `json:"lat"`
	Lng  float64     `json:"lng"`
	// Selected - маркер выбранной сущности
	Selected bool `json:"selected,omitempty"`
}

// MapView - все, что нужно виджету карты для текущего состояния навигации
type MapView struct {
	SessionID string                     `json:"session_id"`
	Level     navigator.Level            `json:"level"`
	Center    domain.LatLng              `json:"center"`
	Zoom      int                        `json:"zoom"`
	Layers    *geojson.FeatureCollection `json:"layers"`
	Markers   []Marker                   `json:"markers"`
	Counter   string                     `json:"counter"`
	Sources   map[domain.Kind]string     `json:"sources"`
}

// Breadcrumb - элемент навигационной цепочки
type Breadcrumb struct {
	Level navigator.Level `json:"level"`
	ID    string          `json:"id,omitempty"`
	Label string          `json:"label"`
}

// Attribute - строка таблицы свойств выбранной сущности
type Attribute struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChildItem - элемент списка дочерних сущностей
type ChildItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Kind     domain.Kind `json:"kind"`
	Subtitle string      `json:"subtitle,omitempty"`
}

// PollutionPanel - загрязнение за выбранную дату
type PollutionPanel struct {
	Date    string                   `json:"date"`
	Data    *domain.PollutionData    `json:"data,omitempty"`
	Record  *domain.PollutionRecord  `json:"record,omitempty"`
	Level   *domain.QualityLevel     `json:"level,omitempty"`
	Average *domain.PollutionAverage `json:"average,omitempty"`
}

// RecommendationGroup - рекомендации одного почтового индекса
type RecommendationGroup struct {
	Zipcode         string                       `json:"zipcode"`
	Recommendations []domain.PlantRecommendation `json:"recommendations"`
}

// PlanView - план посадок, сгруппированный для панели
type PlanView struct {
	PlanType    string                `json:"plan_type"`
	DisplayName string                `json:"display_name"`
	Groups      []RecommendationGroup `json:"groups"`
}

// PlantingPanel - результат симуляции для зоны текущего выбора
type PlantingPanel struct {
	Params  domain.PlantingParams  `json:"params"`
	Summary domain.PlantingSummary `json:"summary"`
	Plans   []PlanView             `json:"plans"`
}

// AirQualityPanel - текущее качество воздуха в квартале
type AirQualityPanel struct {
	Current *domain.AirQuality   `json:"current"`
	Level   *domain.QualityLevel `json:"level"`
}

// Panel - боковая панель деталей
type Panel struct {
	Open        bool             `json:"open"`
	Level       navigator.Level  `json:"level"`
	Title       string           `json:"title"`
	Breadcrumbs []Breadcrumb     `json:"breadcrumbs"`
	Attributes  []Attribute      `json:"attributes"`
	Children    []ChildItem      `json:"children"`
	Pollution   *PollutionPanel  `json:"pollution,omitempty"`
	Planting    *PlantingPanel   `json:"planting,omitempty"`
	AirQuality  *AirQualityPanel `json:"air_quality,omitempty"`
}
