package dto

// SearchRequest - поиск по названиям округов, кварталов и зеленых зон
type SearchRequest struct {
	Query string `json:"query" validate:"max=100"`
}

// PollutionRequest - период в формате YYYY-MM-DD; пустые границы заменяются на последние 180 дней
type PollutionRequest struct {
	StartDate string `json:"start_date" validate:"omitempty,isodate"`
	EndDate   string `json:"end_date" validate:"omitempty,isodate"`
}

// PanelRequest - дата, для которой панель показывает загрязнение (по умолчанию сегодня)
type PanelRequest struct {
	Date string `json:"date" validate:"omitempty,isodate"`
}

// PlantingRequest - переопределение параметров симуляции для текущей зоны сессии
type PlantingRequest struct {
	IncludeRoads    *bool  `json:"include_roads,omitempty"`
	UseSpeciesPerEv *bool  `json:"use_species_per_ev,omitempty"`
	TopK            int    `json:"top_k" validate:"omitempty,min=1,max=100"`
	MaxPerRoad      int    `json:"max_per_road" validate:"omitempty,min=1,max=50"`
	Plans           string `json:"plans" validate:"omitempty,max=200"`
}

// NotificationsRequest - сколько последних уведомлений вернуть
type NotificationsRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=50"`
}
