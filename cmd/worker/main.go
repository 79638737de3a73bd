package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/config"
	"github.com/paris-green-explorer/internal/infrastructure/opendata"
	"github.com/paris-green-explorer/internal/infrastructure/parisapi"
	"github.com/paris-green-explorer/internal/pkg/logger"
	"github.com/paris-green-explorer/internal/repository/cache"
	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/worker"
	"github.com/paris-green-explorer/internal/worker/refresh"
)

// Отдельный процесс, который держит общий Redis-кеш коллекций и контуров теплым
// для нескольких экземпляров API.
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Без общего кеша прогревать нечего
	if !cfg.Redis.Enabled {
		fmt.Println("Cache warmer needs a shared cache. Set REDIS_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Paris Green Explorer cache warmer",
		zap.Duration("interval", cfg.Refresh.Interval))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	cacheRepo := cache.NewCacheRepository(redisClient)

	// 4. Initialize use cases
	gatewayLog := logger.Component(log, "gateway")
	feed := usecase.NewNotificationUseCase(usecase.DefaultNotificationCapacity, gatewayLog)
	boundaryUC := usecase.NewBoundaryUseCase(
		opendata.NewOpenDataClient(&cfg.API, logger.Component(log, "opendata")),
		cacheRepo,
		gatewayLog,
		cfg.Cache.BoundaryTTL,
	)
	gatewayUC := usecase.NewGatewayUseCase(
		parisapi.NewParisClient(&cfg.API, logger.Component(log, "parisapi")),
		boundaryUC,
		cacheRepo,
		feed,
		gatewayLog,
		cfg.Cache.CollectionTTL,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gatewayUC.WarmUp(ctx)

	// 5. Create worker manager and register workers
	workerLog := logger.Component(log, "worker")
	workerManager := worker.NewWorkerManager(workerLog)
	if err := workerManager.Register(refresh.NewCatalogWorker(gatewayUC, cfg.Refresh.Interval, workerLog)); err != nil {
		log.Fatal("Failed to register worker", zap.Error(err))
	}

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(context.Background()); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
