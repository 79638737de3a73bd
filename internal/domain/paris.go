package domain

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Kind - вид сущности (и соответствующего набора границ)
type Kind string

const (
	KindUnits       Kind = "units"
	KindDistricts   Kind = "districts"
	KindGreenSpaces Kind = "green-spaces"
)

// Kinds возвращает все виды в порядке иерархии
func Kinds() []Kind {
	return []Kind{KindUnits, KindDistricts, KindGreenSpaces}
}

// ParseKind разбирает вид из строки пути
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindUnits, KindDistricts, KindGreenSpaces:
		return Kind(s), true
	}
	return "", false
}

// Label - человекочитаемое название вида для уведомлений и счетчиков
func (k Kind) Label() string {
	switch k {
	case KindUnits:
		return "Arrondissements"
	case KindDistricts:
		return "Quartiers"
	case KindGreenSpaces:
		return "Espaces Verts"
	}
	return string(k)
}

// AdministrativeUnit - округ (arrondissement)
type AdministrativeUnit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	Zipcode     string      `json:"zipcode,omitempty"`
	Population  *int        `json:"population,omitempty"`
	Area        *float64    `json:"area,omitempty"`
	Attachments Attachments `json:"attachments,omitempty"`
}

// DisplayName возвращает название округа, либо имя по коду
func (u AdministrativeUnit) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return fmt.Sprintf("%sème Arrondissement", u.Code)
}

// CenterKey - ключ в таблице центров округов: код, либо id
func (u AdministrativeUnit) CenterKey() string {
	if u.Code != "" {
		return u.Code
	}
	return u.ID
}

// PlantingZoneID - пятизначный почтовый индекс, который ожидает сервис симуляции посадок
func (u AdministrativeUnit) PlantingZoneID() string {
	if u.Zipcode != "" {
		return u.Zipcode
	}
	if u.Code != "" {
		code := u.Code
		if len(code) < 2 {
			code = strings.Repeat("0", 2-len(code)) + code
		}
		return "750" + code
	}
	return u.ID
}

// ParentRef - ссылка на родителя из исходных данных: id и/или название
type ParentRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// IsZero - ссылки нет совсем
func (p ParentRef) IsZero() bool {
	return p.ID == "" && p.Name == ""
}

// Matches - совпадение ссылки с родителем хотя бы по одному ключу
func (p ParentRef) Matches(id, name string) bool {
	return (p.ID != "" && p.ID == id) || (p.Name != "" && p.Name == name)
}

// District - квартал (quartier)
type District struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Parent ParentRef `json:"parent"`
	// UnitID - нормализованная ссылка на округ, заполняется при сверке
	UnitID      string      `json:"unit_id,omitempty"`
	Attachments Attachments `json:"attachments,omitempty"`
}

// GreenSpace - зеленая зона
type GreenSpace struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Parent     ParentRef `json:"parent"`
	DistrictID string    `json:"district_id,omitempty"`
	Type       string    `json:"type"`
	Address    string    `json:"address,omitempty"`
	Area       *float64  `json:"area,omitempty"`
	Hours      string    `json:"hours,omitempty"`
	// Geometry - собственный контур (Polygon или MultiPolygon), если источник его отдал
	Geometry    *geojson.Geometry `json:"geometry,omitempty"`
	Location    *LatLng           `json:"location,omitempty"`
	Attachments Attachments       `json:"attachments,omitempty"`
}

// DefaultGreenSpaceType - тип по умолчанию, когда источник его не указал
const DefaultGreenSpaceType = "Espace vert"
