package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/pkg/metrics"
)

// BaseWorker - общий цикл периодического воркера
type BaseWorker struct {
	name     string
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewBaseWorker создает новый BaseWorker
func NewBaseWorker(name string, interval time.Duration, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:     name,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Name возвращает имя воркера
func (w *BaseWorker) Name() string {
	return w.name
}

// Interval - период между итерациями
func (w *BaseWorker) Interval() time.Duration {
	return w.interval
}

// Stop останавливает воркер
func (w *BaseWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}

	w.logger.Info("Stopping worker", zap.String("name", w.name))
	close(w.stopChan)
	w.stopped = true

	return nil
}

// IsStopped проверяет, остановлен ли воркер
func (w *BaseWorker) IsStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// StopChan возвращает канал остановки
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

// Logger возвращает логгер
func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// RunPeriodic выполняет task раз в interval до Stop или отмены ctx.
// Ошибка итерации логируется и не прерывает цикл.
func (w *BaseWorker) RunPeriodic(ctx context.Context, task Task) error {
	if w.interval <= 0 {
		w.logger.Warn("Worker disabled: non-positive interval", zap.String("name", w.name))
		<-w.waitStop(ctx)
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Worker stopped", zap.String("name", w.name))
			return nil

		case <-ctx.Done():
			w.logger.Info("Context cancelled", zap.String("name", w.name))
			return ctx.Err()

		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

func (w *BaseWorker) runOnce(ctx context.Context, task Task) {
	start := time.Now()
	err := task(ctx)
	metrics.WorkerRunsTotal.WithLabelValues(w.name, metrics.ResultLabel(err)).Inc()

	if err != nil {
		w.logger.Error("Worker iteration failed",
			zap.String("name", w.name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return
	}
	w.logger.Debug("Worker iteration done",
		zap.String("name", w.name),
		zap.Duration("duration", time.Since(start)))
}

// waitStop закрывается по Stop или по отмене ctx
func (w *BaseWorker) waitStop(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-w.stopChan:
		case <-ctx.Done():
		}
	}()
	return done
}
