package domain

import (
	"fmt"
	"strconv"
)

// Attachments - дополнительные атрибуты источника из ограниченного набора ключей
type Attachments map[string]string

// Допустимые ключи дополнительных атрибутов по видам сущностей
var (
	UnitAttachmentKeys = []string{
		"c_arinsee", "l_aroff", "n_sq_ar", "perimetre", "surface",
	}
	DistrictAttachmentKeys = []string{
		"c_quinsee", "n_sq_qu", "perimetre", "surface",
	}
	GreenSpaceAttachmentKeys = []string{
		"categorie", "annee_ouverture", "annee_renovation", "presence_cloture",
		"ouvert_ferme", "competence", "adresse_codepostal", "adresse_libellevoie",
		"adresse_numero", "surface_horticole", "perimeter", "id_division",
	}
)

// AttachmentKeys возвращает набор ключей для вида
func AttachmentKeys(kind Kind) []string {
	switch kind {
	case KindUnits:
		return UnitAttachmentKeys
	case KindDistricts:
		return DistrictAttachmentKeys
	case KindGreenSpaces:
		return GreenSpaceAttachmentKeys
	}
	return nil
}

// PickAttachments выбирает из сырой записи только разрешенные ключи и приводит значения к строкам
func PickAttachments(kind Kind, raw map[string]interface{}) Attachments {
	var out Attachments
	for _, key := range AttachmentKeys(kind) {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		s := stringify(v)
		if s == "" {
			continue
		}
		if out == nil {
			out = make(Attachments)
		}
		out[key] = s
	}
	return out
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case map[string]interface{}, []interface{}:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
