package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/paris-green-explorer/internal/pkg/utils"
	"github.com/paris-green-explorer/internal/pkg/validator"
	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/usecase/dto"
)

// NotificationHandler - лента уведомлений о режиме данных
type NotificationHandler struct {
	feed *usecase.NotificationUseCase
}

// NewNotificationHandler - создание нового NotificationHandler
func NewNotificationHandler(feed *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List godoc
// @Summary Уведомления
// @Description Последние уведомления (Connected to Live Data / Offline Mode), новые первыми
// @Tags Notifications
// @Produce json
// @Param limit query int false "Сколько вернуть" default(20)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Notification}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	req := dto.NotificationsRequest{Limit: c.QueryInt("limit", 20)}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	items := h.feed.List(req.Limit)
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}
