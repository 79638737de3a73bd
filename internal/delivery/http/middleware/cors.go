package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/pkg/utils"
)

// DefaultAllowOrigins - dev-серверы карты
const DefaultAllowOrigins = "http://localhost:3000,http://localhost:5173,http://localhost:8080"

// CORS - доступ браузерной карты к API. Только чтение и переходы сессий, без cookies.
// Заголовок источника данных открыт клиенту, чтобы карта показывала режим offline.
func CORS(cfg config.CORSConfig) fiber.Handler {
	origins := strings.TrimSpace(cfg.AllowOrigins)
	if origins == "" {
		origins = DefaultAllowOrigins
	}

	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders:  "Content-Type,Accept,Accept-Language",
		ExposeHeaders: utils.HeaderDataSource,
		MaxAge:        600,
	})
}
