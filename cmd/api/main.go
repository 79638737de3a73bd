package main

// @title Paris Green Explorer API
// @version 1.0.0
// @description Исследование зеленых зон Парижа: округа, кварталы и зеленые зоны с контурами, навигацией по уровням,
// @description загрязнением воздуха, симуляцией посадок деревьев и текущим качеством воздуха.
// @description
// @description При недоступности внешних источников отдаются резервные данные и публикуется уведомление Offline Mode.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/paris-green-explorer/docs"
	"github.com/paris-green-explorer/internal/config"
	httpDelivery "github.com/paris-green-explorer/internal/delivery/http"
	"github.com/paris-green-explorer/internal/delivery/http/handler"
	"github.com/paris-green-explorer/internal/domain/repository"
	"github.com/paris-green-explorer/internal/infrastructure/airquality"
	"github.com/paris-green-explorer/internal/infrastructure/opendata"
	"github.com/paris-green-explorer/internal/infrastructure/parisapi"
	"github.com/paris-green-explorer/internal/infrastructure/planting"
	"github.com/paris-green-explorer/internal/infrastructure/pollution"
	"github.com/paris-green-explorer/internal/pkg/logger"
	"github.com/paris-green-explorer/internal/repository/cache"
	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/worker"
	"github.com/paris-green-explorer/internal/worker/refresh"
)

// sessionSweepInterval - как часто удалять просроченные сессии
const sessionSweepInterval = 5 * time.Minute

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Paris Green Explorer")
	log.Info("Configuration loaded",
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Duration("collection_ttl", cfg.Cache.CollectionTTL),
	)

	// 3. Cache: Redis, если включен и доступен, иначе в памяти процесса
	var (
		cacheRepo repository.CacheRepository
		health    httpDelivery.HealthChecker
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}()
			cacheRepo = cache.NewCacheRepository(redisClient)
			health = redisClient
			log.Info("Redis connected")
		}
	}
	if cacheRepo == nil {
		cacheRepo = cache.NewMemoryCacheRepository(log)
	}

	// 4. Remote clients
	parisRepo := parisapi.NewParisClient(&cfg.API, logger.Component(log, "parisapi"))
	boundaryRepo := opendata.NewOpenDataClient(&cfg.API, logger.Component(log, "opendata"))
	pollutionRepo := pollution.NewPollutionClient(&cfg.API, logger.Component(log, "pollution"))
	plantingRepo := planting.NewPlantingClient(&cfg.API, logger.Component(log, "planting"))
	airRepo := airquality.NewAirQualityClient(&cfg.API, logger.Component(log, "airquality"))

	log.Info("Remote clients initialized")

	// 5. Initialize Use Cases
	gatewayLog := logger.Component(log, "gateway")
	feed := usecase.NewNotificationUseCase(usecase.DefaultNotificationCapacity, gatewayLog)
	boundaryUC := usecase.NewBoundaryUseCase(boundaryRepo, cacheRepo, gatewayLog, cfg.Cache.BoundaryTTL)
	gatewayUC := usecase.NewGatewayUseCase(parisRepo, boundaryUC, cacheRepo, feed, gatewayLog, cfg.Cache.CollectionTTL)
	pollutionUC := usecase.NewPollutionUseCase(pollutionRepo, cacheRepo, feed, gatewayLog, cfg.Cache.PollutionTTL)
	plantingUC := usecase.NewPlantingUseCase(plantingRepo, cacheRepo, gatewayLog, cfg.Cache.PlantingTTL)
	airQualityUC := usecase.NewAirQualityUseCase(airRepo, cacheRepo, gatewayLog, cfg.Cache.AirQualityTTL)

	explorerUC := usecase.NewExplorerUseCase(gatewayUC, boundaryUC, plantingUC, log, cfg.Session.TTL)
	panelUC := usecase.NewPanelUseCase(explorerUC, gatewayUC, pollutionUC, airQualityUC, log)
	searchUC := usecase.NewSearchUseCase(gatewayUC, log)
	statsUC := usecase.NewStatsUseCase(gatewayUC, explorerUC, log)

	log.Info("Use cases initialized")

	// 6. Warm up collections and boundaries; failures fall back, never block start
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 2*cfg.API.RequestTimeout)
	gatewayUC.WarmUp(warmCtx)
	warmCancel()

	// 7. Background workers
	workerLog := logger.Component(log, "worker")
	workers := worker.NewWorkerManager(workerLog)
	if cfg.Refresh.Enabled {
		if err := workers.Register(refresh.NewCatalogWorker(gatewayUC, cfg.Refresh.Interval, workerLog)); err != nil {
			log.Fatal("Failed to register worker", zap.Error(err))
		}
	}
	if err := workers.Register(refresh.NewSessionWorker(explorerUC, sessionSweepInterval, workerLog)); err != nil {
		log.Fatal("Failed to register worker", zap.Error(err))
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	if err := workers.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Initialize HTTP Handlers
	httpLog := logger.Component(log, "http")
	server := httpDelivery.NewServer(
		cfg,
		httpLog,
		health,
		handler.NewSessionHandler(explorerUC, panelUC, httpLog),
		handler.NewCatalogHandler(gatewayUC, boundaryUC, httpLog),
		handler.NewSearchHandler(searchUC, httpLog),
		handler.NewEnvironmentHandler(pollutionUC, airQualityUC, httpLog),
		handler.NewNotificationHandler(feed),
		handler.NewStatsHandler(statsUC, httpLog),
	)

	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	workerCancel()
	if err := workers.Stop(ctx); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
