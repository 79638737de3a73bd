package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/pkg/errors"
	"github.com/paris-green-explorer/internal/pkg/utils"
	"github.com/paris-green-explorer/internal/pkg/validator"
	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/usecase/dto"
)

// EnvironmentHandler - загрязнение и качество воздуха
type EnvironmentHandler struct {
	pollutionUC  *usecase.PollutionUseCase
	airQualityUC *usecase.AirQualityUseCase
	logger       *zap.Logger
}

// NewEnvironmentHandler - создание нового EnvironmentHandler
func NewEnvironmentHandler(
	pollutionUC *usecase.PollutionUseCase,
	airQualityUC *usecase.AirQualityUseCase,
	logger *zap.Logger,
) *EnvironmentHandler {
	return &EnvironmentHandler{
		pollutionUC:  pollutionUC,
		airQualityUC: airQualityUC,
		logger:       logger,
	}
}

// GetPollution godoc
// @Summary Загрязнение по округам
// @Description Показатели NO2/PM10 за период (по умолчанию последние 180 дней) со средними значениями
// @Tags Environment
// @Produce json
// @Param start_date query string false "Начало периода YYYY-MM-DD"
// @Param end_date query string false "Конец периода YYYY-MM-DD"
// @Success 200 {object} utils.SuccessResponse{data=domain.PollutionData}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/pollution [get]
func (h *EnvironmentHandler) GetPollution(c *fiber.Ctx) error {
	req := dto.PollutionRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	data, err := h.pollutionUC.FetchPollution(c.UserContext(), req.StartDate, req.EndDate)
	if err != nil {
		return utils.SendError(c, err)
	}
	if data == nil {
		return utils.SendError(c, errors.ErrDataUnavailable.WithDetails(map[string]interface{}{"kind": "pollution"}))
	}

	return utils.SendSuccess(c, data, &utils.Meta{Total: len(data.Records)})
}

// GetDistrictAirQuality godoc
// @Summary Качество воздуха в квартале
// @Description Текущие показатели Open-Meteo в центре квартала (центр Парижа, если координаты неизвестны)
// @Tags Environment
// @Produce json
// @Param districtId path string true "ID квартала"
// @Success 200 {object} utils.SuccessResponse{data=dto.AirQualityPanel}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/air-quality/{districtId} [get]
func (h *EnvironmentHandler) GetDistrictAirQuality(c *fiber.Ctx) error {
	aq := h.airQualityUC.FetchForDistrict(c.UserContext(), c.Params("districtId"))
	return h.sendAirQuality(c, aq)
}

// GetAirQuality godoc
// @Summary Качество воздуха в точке
// @Tags Environment
// @Produce json
// @Param lat query number true "Широта"
// @Param lng query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=dto.AirQualityPanel}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/air-quality [get]
func (h *EnvironmentHandler) GetAirQuality(c *fiber.Ctx) error {
	point := domain.LatLng{
		Lat: c.QueryFloat("lat", domain.ParisCenter.Lat),
		Lng: c.QueryFloat("lng", domain.ParisCenter.Lng),
	}
	if !utils.ValidateCoordinates(point.Lat, point.Lng) {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	return h.sendAirQuality(c, h.airQualityUC.FetchAt(c.UserContext(), point))
}

func (h *EnvironmentHandler) sendAirQuality(c *fiber.Ctx, aq *domain.AirQuality) error {
	if aq == nil {
		return utils.SendError(c, errors.ErrDataUnavailable.WithDetails(map[string]interface{}{"kind": "air-quality"}))
	}
	level := domain.AQILevel(aq.EuropeanAQI)
	return utils.SendSuccess(c, dto.AirQualityPanel{Current: aq, Level: &level}, nil)
}
