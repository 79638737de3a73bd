package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/paris-green-explorer/internal/pkg/errors"
)

// HeaderDataSource - источник данных ответа: live, cache или fallback
const HeaderDataSource = "X-Data-Source"

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta - размер коллекции и откуда она пришла
type Meta struct {
	Total    int     `json:"total,omitempty"`
	Source   string  `json:"source,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

// SendSuccess - конверт {data, meta}; источник из meta дублируется в заголовке
func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	if meta != nil && meta.Source != "" {
		c.Set(HeaderDataSource, meta.Source)
	}
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendCreated - то же, что SendSuccess, со статусом 201
func SendCreated(c *fiber.Ctx, data interface{}) error {
	c.Status(fiber.StatusCreated)
	return SendSuccess(c, data, nil)
}

// SendError - AppError отдается со своим статусом, остальное как 500 без деталей
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.ErrInternalServer
	}
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}
