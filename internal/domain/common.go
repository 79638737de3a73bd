package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// LatLng - точка для отображения на карте
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point переводит координаты в orb.Point (lng, lat)
func (p LatLng) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// ParisCenter - центр Парижа, базовая точка по умолчанию
var ParisCenter = LatLng{Lat: 48.8566, Lng: 2.3522}

// DataSource - откуда получены данные
type DataSource string

const (
	SourceLive     DataSource = "live"
	SourceCache    DataSource = "cache"
	SourceFallback DataSource = "fallback"
)

// CollectionResult - коллекция сущностей вместе с источником
type CollectionResult[T any] struct {
	Items     []T        `json:"items"`
	Source    DataSource `json:"source"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// Statistics - сводка по загруженным данным
type Statistics struct {
	Units       int                 `json:"units"`
	Districts   int                 `json:"districts"`
	GreenSpaces int                 `json:"green_spaces"`
	Sources     map[Kind]DataSource `json:"sources"`
	// Unlinked - сколько сущностей не удалось привязать к родителю при сверке
	UnlinkedDistricts   int       `json:"unlinked_districts"`
	UnlinkedGreenSpaces int       `json:"unlinked_green_spaces"`
	ActiveSessions      int       `json:"active_sessions"`
	LastUpdated         time.Time `json:"last_updated"`
}
