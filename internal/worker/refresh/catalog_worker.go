package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/worker"
)

// CatalogRefresher - то, что умеет перечитать коллекции из источников
type CatalogRefresher interface {
	Refresh(ctx context.Context) *usecase.Catalog
}

// CatalogWorker периодически сбрасывает кеш коллекций и загружает их заново
type CatalogWorker struct {
	*worker.BaseWorker
	gateway CatalogRefresher
}

// NewCatalogWorker создает новый CatalogWorker
func NewCatalogWorker(gateway CatalogRefresher, interval time.Duration, logger *zap.Logger) *CatalogWorker {
	return &CatalogWorker{
		BaseWorker: worker.NewBaseWorker("catalog-refresh", interval, logger),
		gateway:    gateway,
	}
}

// Start запускает воркер
func (w *CatalogWorker) Start(ctx context.Context) error {
	w.Logger().Info("Starting CatalogWorker", zap.Duration("interval", w.Interval()))
	return w.RunPeriodic(ctx, w.refresh)
}

func (w *CatalogWorker) refresh(ctx context.Context) error {
	c := w.gateway.Refresh(ctx)
	if c == nil {
		return nil
	}
	w.Logger().Info("Catalog refreshed",
		zap.Int("units", len(c.Units)),
		zap.Int("districts", len(c.Districts)),
		zap.Int("green_spaces", len(c.GreenSpaces)),
		zap.Any("sources", c.Sources),
	)
	return ctx.Err()
}
