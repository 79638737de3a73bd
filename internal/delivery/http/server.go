package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/delivery/http/handler"
	"github.com/paris-green-explorer/internal/delivery/http/middleware"
	"github.com/paris-green-explorer/internal/pkg/errors"
	"github.com/paris-green-explorer/internal/pkg/metrics"
	"github.com/paris-green-explorer/internal/pkg/utils"
)

// HealthChecker - зависимость, состояние которой попадает в /health (например, Redis)
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	health HealthChecker

	// Handlers
	sessionHandler      *handler.SessionHandler
	catalogHandler      *handler.CatalogHandler
	searchHandler       *handler.SearchHandler
	environmentHandler  *handler.EnvironmentHandler
	notificationHandler *handler.NotificationHandler
	statsHandler        *handler.StatsHandler
}

// NewServer - создание нового HTTP сервера. health может быть nil, если кеш в памяти.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	health HealthChecker,
	sessionHandler *handler.SessionHandler,
	catalogHandler *handler.CatalogHandler,
	searchHandler *handler.SearchHandler,
	environmentHandler *handler.EnvironmentHandler,
	notificationHandler *handler.NotificationHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Paris Green Explorer",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		health:              health,
		sessionHandler:      sessionHandler,
		catalogHandler:      catalogHandler,
		searchHandler:       searchHandler,
		environmentHandler:  environmentHandler,
		notificationHandler: notificationHandler,
		statsHandler:        statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - экземпляр fiber, используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthCheck)

	// Sessions
	sessions := api.Group("/sessions")
	sessions.Post("/", s.sessionHandler.CreateSession)
	sessions.Get("/:id", s.sessionHandler.GetState)
	sessions.Get("/:id/view", s.sessionHandler.GetMapView)
	sessions.Get("/:id/panel", s.sessionHandler.GetPanel)
	sessions.Post("/:id/units/:unitId", s.sessionHandler.SelectUnit)
	sessions.Post("/:id/districts/:districtId", s.sessionHandler.SelectDistrict)
	sessions.Post("/:id/green-spaces/:greenSpaceId", s.sessionHandler.SelectGreenSpace)
	sessions.Post("/:id/jump/:kind/:entityId", s.sessionHandler.Jump)
	sessions.Post("/:id/back", s.sessionHandler.GoBack)
	sessions.Post("/:id/close", s.sessionHandler.Close)
	sessions.Post("/:id/planting", s.sessionHandler.RequestPlanting)

	// Catalog
	api.Get("/units", s.catalogHandler.GetUnits)
	api.Get("/districts", s.catalogHandler.GetDistricts)
	api.Get("/green-spaces", s.catalogHandler.GetGreenSpaces)
	api.Get("/boundaries/:kind", s.catalogHandler.GetBoundaries)

	api.Get("/search", s.searchHandler.Search)

	// Environment overlays
	api.Get("/pollution", s.environmentHandler.GetPollution)
	api.Get("/air-quality", s.environmentHandler.GetAirQuality)
	api.Get("/air-quality/:districtId", s.environmentHandler.GetDistrictAirQuality)

	api.Get("/notifications", s.notificationHandler.List)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
	api.Post("/stats/refresh", s.statsHandler.RefreshStatistics)
}

// healthCheck - сервис жив всегда; недоступный кеш помечается как degraded
func (s *Server) healthCheck(c *fiber.Ctx) error {
	status := "healthy"
	cache := "memory"
	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := s.health.Health(ctx); err != nil {
			status = "degraded"
			cache = err.Error()
		} else {
			cache = "redis"
		}
	}

	return c.JSON(fiber.Map{
		"status": status,
		"cache":  cache,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405 и т.п.) в общем формате ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			if e.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", e.Code), zap.Error(err))
			}
			return utils.SendError(c, errors.New(httpErrorCode(e.Code), e.Message, e.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_SERVER_ERROR"
	}
	return "INVALID_REQUEST"
}
