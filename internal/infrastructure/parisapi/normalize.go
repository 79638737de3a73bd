package parisapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb/geojson"

	"github.com/paris-green-explorer/internal/domain"
)

// record - сырая запись источника; имена полей зависят от выгрузки
type record map[string]interface{}

// str возвращает первое "истинное" значение среди ключей в виде строки
func (r record) str(keys ...string) string {
	for _, k := range keys {
		if s := truthyString(r[k]); s != "" {
			return s
		}
	}
	return ""
}

// num возвращает первое ненулевое числовое значение (числа и числовые строки)
func (r record) num(keys ...string) *float64 {
	for _, k := range keys {
		switch v := r[k].(type) {
		case float64:
			if v != 0 {
				return &v
			}
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err == nil && f != 0 {
				return &f
			}
		}
	}
	return nil
}

func truthyString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
	case json.Number:
		return t.String()
	}
	return ""
}

func unitName(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf("%sème Arrondissement", code)
}

// trimCode убирает ведущие нули: "01" -> "1"
func trimCode(code string) string {
	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" && code != "" {
		return "0"
	}
	return trimmed
}

func normalizeUnit(r record) domain.AdministrativeUnit {
	cAr := r.str("c_ar")

	code := ""
	if zip := r.str("zipcode"); len(zip) >= 2 {
		code = zip[len(zip)-2:]
	}
	if code == "" {
		code = r.str("code", "c_ar")
	}

	u := domain.AdministrativeUnit{
		ID:          r.str("id", "zipcode", "c_ar"),
		Name:        r.str("zonename", "nom", "l_ar"),
		Code:        trimCode(code),
		Zipcode:     r.str("zipcode"),
		Area:        r.num("superficie", "area"),
		Attachments: domain.PickAttachments(domain.KindUnits, r),
	}
	if u.Name == "" {
		u.Name = unitName(cAr)
	}
	if p := r.num("population"); p != nil {
		pop := int(*p)
		u.Population = &pop
	}
	return u
}

func normalizeDistrict(r record) domain.District {
	d := domain.District{
		ID:   r.str("id", "c_qu"),
		Name: r.str("nom", "l_qu", "name"),
		Parent: domain.ParentRef{
			ID:   r.str("arrondissement_id", "c_ar"),
			Name: r.str("arrondissement", "l_ar"),
		},
		Attachments: domain.PickAttachments(domain.KindDistricts, r),
	}
	if d.Parent.Name == "" {
		d.Parent.Name = unitName(r.str("c_ar"))
	}
	return d
}

func normalizeGreenSpace(r record) domain.GreenSpace {
	g := domain.GreenSpace{
		ID:   r.str("id", "nsq_espace_vert"),
		Name: r.str("nom", "nom_ev", "name"),
		Parent: domain.ParentRef{
			ID:   r.str("quartier_id", "c_qu"),
			Name: r.str("quartier", "l_qu"),
		},
		Type:        r.str("type", "type_ev", "categorie"),
		Address:     r.str("adresse", "adresse_codepostal"),
		Area:        r.num("superficie", "surface_totale_reelle", "total_area"),
		Hours:       r.str("horaires", "horaires_ouverture"),
		Geometry:    parseGeometry(r["geom"]),
		Attachments: domain.PickAttachments(domain.KindGreenSpaces, r),
	}
	if g.Type == "" {
		g.Type = domain.DefaultGreenSpaceType
	}

	lat, lng := r.num("lat"), r.num("lng")
	if lat != nil && lng != nil {
		g.Location = &domain.LatLng{Lat: *lat, Lng: *lng}
	}
	return g
}

// parseGeometry принимает GeoJSON-геометрию строкой или объектом; ошибки разбора игнорируются
func parseGeometry(v interface{}) *geojson.Geometry {
	var data []byte
	switch t := v.(type) {
	case string:
		data = []byte(t)
	case map[string]interface{}:
		b, err := json.Marshal(t)
		if err != nil {
			return nil
		}
		data = b
	default:
		return nil
	}

	g, err := geojson.UnmarshalGeometry(data)
	if err != nil || g == nil || !domain.IsArea(g.Geometry()) {
		return nil
	}
	return g
}
