package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/navigator"
	"github.com/paris-green-explorer/internal/pkg/errors"
	"github.com/paris-green-explorer/internal/pkg/utils"
	"github.com/paris-green-explorer/internal/usecase"
)

// CatalogHandler - коллекции сущностей и их контуры
type CatalogHandler struct {
	gatewayUC  *usecase.GatewayUseCase
	boundaryUC *usecase.BoundaryUseCase
	logger     *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(gatewayUC *usecase.GatewayUseCase, boundaryUC *usecase.BoundaryUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		gatewayUC:  gatewayUC,
		boundaryUC: boundaryUC,
		logger:     logger,
	}
}

// GetUnits godoc
// @Summary Округа
// @Description Все 20 округов; при недоступности источника отдаются резервные данные
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.AdministrativeUnit}
// @Router /api/v1/units [get]
func (h *CatalogHandler) GetUnits(c *fiber.Ctx) error {
	res := h.gatewayUC.FetchUnits(c.UserContext())
	return utils.SendSuccess(c, res.Items, &utils.Meta{
		Total:  len(res.Items),
		Source: string(res.Source),
	})
}

// GetDistricts godoc
// @Summary Кварталы
// @Description Кварталы с нормализованной ссылкой на округ, опционально только одного округа
// @Tags Catalog
// @Produce json
// @Param unit_id query string false "ID округа"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.District}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/districts [get]
func (h *CatalogHandler) GetDistricts(c *fiber.Ctx) error {
	catalog := h.gatewayUC.Snapshot(c.UserContext())
	items := catalog.Districts

	if unitID := c.Query("unit_id"); unitID != "" {
		unit, ok := catalog.Unit(unitID)
		if !ok {
			return utils.SendError(c, errors.ErrEntityNotFound.WithDetails(map[string]interface{}{
				"unit_id": unitID,
			}))
		}
		items = navigator.FilterDistricts(items, unit)
	}

	return utils.SendSuccess(c, items, &utils.Meta{
		Total:  len(items),
		Source: string(catalog.Sources[domain.KindDistricts]),
	})
}

// GetGreenSpaces godoc
// @Summary Зеленые зоны
// @Description Зеленые зоны с нормализованной ссылкой на квартал, опционально только одного квартала
// @Tags Catalog
// @Produce json
// @Param district_id query string false "ID квартала"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.GreenSpace}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/green-spaces [get]
func (h *CatalogHandler) GetGreenSpaces(c *fiber.Ctx) error {
	catalog := h.gatewayUC.Snapshot(c.UserContext())
	items := catalog.GreenSpaces

	if districtID := c.Query("district_id"); districtID != "" {
		district, ok := catalog.District(districtID)
		if !ok {
			return utils.SendError(c, errors.ErrEntityNotFound.WithDetails(map[string]interface{}{
				"district_id": districtID,
			}))
		}
		items = navigator.FilterGreenSpaces(items, district)
	}

	return utils.SendSuccess(c, items, &utils.Meta{
		Total:  len(items),
		Source: string(catalog.Sources[domain.KindGreenSpaces]),
	})
}

// GetBoundaries godoc
// @Summary Контуры
// @Description GeoJSON FeatureCollection контуров; для округов есть приближенный резерв, для остальных пустая коллекция
// @Tags Catalog
// @Produce json
// @Param kind path string true "Вид" Enums(units, districts, green-spaces)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/boundaries/{kind} [get]
func (h *CatalogHandler) GetBoundaries(c *fiber.Ctx) error {
	kind, ok := domain.ParseKind(c.Params("kind"))
	if !ok {
		return utils.SendError(c, errors.ErrInvalidBoundaryKind.WithDetails(map[string]interface{}{
			"kind": c.Params("kind"),
		}))
	}

	fc, source := h.boundaryUC.FetchBoundaries(c.UserContext(), kind)
	return utils.SendSuccess(c, fc, &utils.Meta{
		Total:  len(fc.Features),
		Source: string(source),
	})
}
