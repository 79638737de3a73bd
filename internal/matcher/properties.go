package matcher

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/paris-green-explorer/internal/pkg/utils"
)

// Ключи свойств, под которыми источники кладут код округа и названия
var (
	unitCodeKeys       = []string{"c_ar", "code_arr", "c_arinsee"}
	districtNameKeys   = []string{"l_qu", "nom"}
	greenSpaceNameKeys = []string{"nom", "nom_ev"}
)

// firstProperty возвращает первое значение, которое есть в свойствах (как в цепочке `a || b || c`)
func firstProperty(f *geojson.Feature, keys []string) interface{} {
	for _, k := range keys {
		v, ok := f.Properties[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t == "" {
				continue
			}
		case float64:
			if t == 0 {
				continue
			}
		case bool:
			if !t {
				continue
			}
		}
		return v
	}
	return nil
}

// firstString - первое строковое значение по ключам, в нижнем регистре
func firstString(f *geojson.Feature, keys []string) string {
	s, _ := firstProperty(f, keys).(string)
	return strings.ToLower(s)
}

// parseCode вытаскивает число из строки, отбрасывая все кроме цифр (-1 если цифр нет)
func parseCode(s string) int {
	digits := utils.DigitsOnly(s)
	if digits == "" {
		return -1
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return n
}
