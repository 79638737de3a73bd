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

// SessionHandler - навигация по сессии исследования карты
type SessionHandler struct {
	explorerUC *usecase.ExplorerUseCase
	panelUC    *usecase.PanelUseCase
	logger     *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(explorerUC *usecase.ExplorerUseCase, panelUC *usecase.PanelUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		explorerUC: explorerUC,
		panelUC:    panelUC,
		logger:     logger,
	}
}

// CreateSession godoc
// @Summary Новая сессия
// @Description Создает сессию на уровне города: панель закрыта, ничего не выбрано
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	resp := h.explorerUC.CreateSession()
	return utils.SendCreated(c, resp)
}

// GetState godoc
// @Summary Состояние навигации
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetState(c *fiber.Ctx) error {
	id := c.Params("id")
	st, err := h.explorerUC.State(id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.SessionResponse{SessionID: id, State: st}, nil)
}

// GetMapView godoc
// @Summary Представление карты
// @Description Центр, масштаб, слои контуров с ролями, маркеры и счетчик для текущего уровня
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapView}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/view [get]
func (h *SessionHandler) GetMapView(c *fiber.Ctx) error {
	view, err := h.explorerUC.MapView(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

// SelectUnit godoc
// @Summary Выбор округа
// @Description Переход к кварталам округа с любого уровня
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Param unitId path string true "ID округа"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/units/{unitId} [post]
func (h *SessionHandler) SelectUnit(c *fiber.Ctx) error {
	resp, err := h.explorerUC.SelectUnit(c.UserContext(), c.Params("id"), c.Params("unitId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// SelectDistrict godoc
// @Summary Выбор квартала
// @Description Переход к зеленым зонам квартала; требует выбранного округа
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Param districtId path string true "ID квартала"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/districts/{districtId} [post]
func (h *SessionHandler) SelectDistrict(c *fiber.Ctx) error {
	resp, err := h.explorerUC.SelectDistrict(c.UserContext(), c.Params("id"), c.Params("districtId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// SelectGreenSpace godoc
// @Summary Выбор зеленой зоны
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Param greenSpaceId path string true "ID зеленой зоны"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/green-spaces/{greenSpaceId} [post]
func (h *SessionHandler) SelectGreenSpace(c *fiber.Ctx) error {
	resp, err := h.explorerUC.SelectGreenSpace(c.UserContext(), c.Params("id"), c.Params("greenSpaceId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Jump godoc
// @Summary Переход из поиска
// @Description Переход сразу к кварталу или зеленой зоне, родители определяются по данным
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Param kind path string true "Вид сущности" Enums(units, districts, green-spaces)
// @Param entityId path string true "ID сущности"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/jump/{kind}/{entityId} [post]
func (h *SessionHandler) Jump(c *fiber.Ctx) error {
	kind, ok := domain.ParseKind(c.Params("kind"))
	if !ok {
		return utils.SendError(c, errors.ErrInvalidBoundaryKind.WithDetails(map[string]interface{}{
			"kind": c.Params("kind"),
		}))
	}

	resp, err := h.explorerUC.Jump(c.UserContext(), c.Params("id"), kind, c.Params("entityId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// GoBack godoc
// @Summary Назад
// @Description Снимает самый глубокий выбор
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/back [post]
func (h *SessionHandler) GoBack(c *fiber.Ctx) error {
	resp, err := h.explorerUC.GoBack(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Close godoc
// @Summary Закрыть панель
// @Description Возврат на уровень города со сбросом выбора
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/close [post]
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	resp, err := h.explorerUC.Close(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// GetPanel godoc
// @Summary Панель деталей
// @Description Навигационная цепочка, свойства, дочерние сущности, загрязнение за дату, посадки и качество воздуха
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Param date query string false "Дата загрязнения YYYY-MM-DD (по умолчанию сегодня)"
// @Success 200 {object} utils.SuccessResponse{data=dto.Panel}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/panel [get]
func (h *SessionHandler) GetPanel(c *fiber.Ctx) error {
	req := dto.PanelRequest{Date: c.Query("date")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	panel, err := h.panelUC.Panel(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, panel, nil)
}

// RequestPlanting godoc
// @Summary Симуляция посадок
// @Description Запрашивает симуляцию для выбранной зоны (квартал, иначе округ). Устаревший запрос отклоняется.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.PlantingRequest false "Параметры симуляции"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlantingPanel}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/planting [post]
func (h *SessionHandler) RequestPlanting(c *fiber.Ctx) error {
	var req dto.PlantingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"body": "invalid JSON",
			}))
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.explorerUC.RequestPlanting(c.UserContext(), c.Params("id"), req)
	if err != nil {
		h.logger.Debug("Planting request rejected",
			zap.String("session_id", c.Params("id")),
			zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
