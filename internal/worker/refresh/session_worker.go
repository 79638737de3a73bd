package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/worker"
)

// SessionCleaner удаляет сессии без активности дольше TTL
type SessionCleaner interface {
	CleanupExpired() int
}

// SessionWorker периодически вычищает просроченные сессии
type SessionWorker struct {
	*worker.BaseWorker
	sessions SessionCleaner
}

// NewSessionWorker создает новый SessionWorker
func NewSessionWorker(sessions SessionCleaner, interval time.Duration, logger *zap.Logger) *SessionWorker {
	return &SessionWorker{
		BaseWorker: worker.NewBaseWorker("session-sweeper", interval, logger),
		sessions:   sessions,
	}
}

// Start запускает воркер
func (w *SessionWorker) Start(ctx context.Context) error {
	return w.RunPeriodic(ctx, func(context.Context) error {
		if removed := w.sessions.CleanupExpired(); removed > 0 {
			w.Logger().Info("Expired sessions removed", zap.Int("count", removed))
		}
		return nil
	})
}
