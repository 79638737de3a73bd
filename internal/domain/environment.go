package domain

import "strings"

// PollutionRecord - показатели загрязнения по одному округу
type PollutionRecord struct {
	Zipcode    string  `json:"zipcode"`
	NO2        float64 `json:"no2"`
	PM10       float64 `json:"pm10"`
	UrbanIndex float64 `json:"urban_index"`
	Level      string  `json:"level"`
}

type PollutionAverage struct {
	NO2        float64 `json:"no2"`
	PM10       float64 `json:"pm10"`
	UrbanIndex float64 `json:"urban_index"`
}

// PollutionData - данные о загрязнении за период
type PollutionData struct {
	Period  string            `json:"period"`
	Source  string            `json:"source"`
	Records []PollutionRecord `json:"records"`
	Average PollutionAverage  `json:"average"`
}

// QualityLevel - уровень качества воздуха для отображения
type QualityLevel struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var (
	pollutionLow      = QualityLevel{Label: "Faible", Description: "Qualité de l'air excellente"}
	pollutionModerate = QualityLevel{Label: "Modéré", Description: "Qualité de l'air modérée"}
	pollutionHigh     = QualityLevel{Label: "Élevé", Description: "Qualité de l'air médiocre"}
	pollutionVeryHigh = QualityLevel{Label: "Très élevé", Description: "Qualité de l'air mauvaise"}
)

// PollutionLevelByName - уровень по полю niveau из API
func PollutionLevelByName(niveau string) QualityLevel {
	switch strings.ToLower(strings.TrimSpace(niveau)) {
	case "faible":
		return pollutionLow
	case "modéré", "modere":
		return pollutionModerate
	case "élevé", "eleve":
		return pollutionHigh
	case "très élevé", "tres eleve":
		return pollutionVeryHigh
	}
	return QualityLevel{Label: niveau, Description: "Niveau inconnu"}
}

// PollutionLevelByPM10 - уровень по средней концентрации PM10
func PollutionLevelByPM10(pm10 float64) QualityLevel {
	switch {
	case pm10 <= 20:
		return pollutionLow
	case pm10 <= 40:
		return pollutionModerate
	case pm10 <= 60:
		return pollutionHigh
	default:
		return pollutionVeryHigh
	}
}

// AirQuality - текущее качество воздуха в точке
type AirQuality struct {
	EuropeanAQI     float64 `json:"european_aqi"`
	PM10            float64 `json:"pm10"`
	PM25            float64 `json:"pm2_5"`
	Ozone           float64 `json:"ozone"`
	NitrogenDioxide float64 `json:"nitrogen_dioxide"`
	Time            string  `json:"time"`
}

// AQILevel - полоса европейского индекса качества воздуха
func AQILevel(aqi float64) QualityLevel {
	switch {
	case aqi <= 20:
		return QualityLevel{Label: "Excellent", Description: "Air quality is excellent"}
	case aqi <= 40:
		return QualityLevel{Label: "Bon", Description: "Air quality is good"}
	case aqi <= 60:
		return QualityLevel{Label: "Modéré", Description: "Moderate air quality"}
	case aqi <= 80:
		return QualityLevel{Label: "Médiocre", Description: "Poor air quality"}
	case aqi <= 100:
		return QualityLevel{Label: "Mauvais", Description: "Very poor air quality"}
	default:
		return QualityLevel{Label: "Très mauvais", Description: "Extremely poor air quality"}
	}
}
