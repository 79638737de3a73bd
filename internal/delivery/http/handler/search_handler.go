package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/pkg/utils"
	"github.com/paris-green-explorer/internal/pkg/validator"
	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/usecase/dto"
)

// SearchHandler - обработчик для поисковых запросов
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск по названиям
// @Description Поиск округов (также по коду), кварталов и зеленых зон без учета регистра и диакритики. Запрос короче 2 символов дает пустой результат. Не более 3 округов, 3 кварталов и 5 зеленых зон.
// @Tags Search
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{Query: c.Query("q")}

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
