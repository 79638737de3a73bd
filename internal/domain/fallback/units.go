package fallback

import (
	"fmt"
	"strconv"

	"github.com/paris-green-explorer/internal/domain"
)

// UnitCount - число округов Парижа
const UnitCount = 20

// Units - 20 округов с кодами 1..20
func Units() []domain.AdministrativeUnit {
	units := make([]domain.AdministrativeUnit, 0, UnitCount)
	for i := 1; i <= UnitCount; i++ {
		code := strconv.Itoa(i)
		name := fmt.Sprintf("%sème Arrondissement", code)
		if i == 1 {
			name = "1er Arrondissement"
		}
		units = append(units, domain.AdministrativeUnit{ID: code, Code: code, Name: name})
	}
	return units
}
