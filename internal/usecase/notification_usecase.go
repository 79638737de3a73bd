package usecase

import (
	"container/ring"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
)

// DefaultNotificationCapacity - сколько последних уведомлений хранит лента
const DefaultNotificationCapacity = 50

// NotificationUseCase - ограниченная лента уведомлений о состоянии источников данных
type NotificationUseCase struct {
	mu       sync.RWMutex
	next     *ring.Ring // слот для следующей записи
	size     int
	capacity int
	now      func() time.Time
	logger   *zap.Logger
}

// NewNotificationUseCase - создание ленты уведомлений
func NewNotificationUseCase(capacity int, logger *zap.Logger) *NotificationUseCase {
	if capacity <= 0 {
		capacity = DefaultNotificationCapacity
	}
	return &NotificationUseCase{
		next:     ring.New(capacity),
		capacity: capacity,
		now:      time.Now,
		logger:   logger,
	}
}

// Publish добавляет уведомление; самые старые вытесняются при переполнении
func (uc *NotificationUseCase) Publish(n domain.Notification) domain.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = uc.now()
	}
	if n.Variant == "" {
		n.Variant = domain.VariantDefault
	}

	uc.mu.Lock()
	uc.next.Value = n
	uc.next = uc.next.Next()
	if uc.size < uc.capacity {
		uc.size++
	}
	uc.mu.Unlock()

	uc.logger.Debug("Notification published",
		zap.String("kind", n.Kind),
		zap.String("title", n.Title),
		zap.String("variant", string(n.Variant)),
	)
	return n
}

// Live - источник ответил, используются живые данные
func (uc *NotificationUseCase) Live(kind domain.Kind) domain.Notification {
	return uc.Publish(domain.Notification{
		Kind:        string(kind),
		Title:       "Connected to Live Data",
		Description: fmt.Sprintf("%s loaded from the live API", kind.Label()),
		Variant:     domain.VariantDefault,
		Mode:        domain.ModeLive,
	})
}

// Offline - источник недоступен, показаны резервные данные
func (uc *NotificationUseCase) Offline(kind domain.Kind, cause error) domain.Notification {
	return uc.Publish(domain.Notification{
		Kind:        string(kind),
		Title:       fmt.Sprintf("Offline Mode (%s)", kind.Label()),
		Description: fmt.Sprintf("Using fallback data: %v", cause),
		Variant:     domain.VariantDestructive,
		Mode:        domain.ModeOffline,
	})
}

// Unavailable - у источника нет резервного набора, данные просто не показываются
func (uc *NotificationUseCase) Unavailable(kind string, cause error) domain.Notification {
	return uc.Publish(domain.Notification{
		Kind:        kind,
		Title:       "Data unavailable",
		Description: cause.Error(),
		Variant:     domain.VariantDestructive,
		Mode:        domain.ModeOffline,
	})
}

// List возвращает до limit последних уведомлений, новые первыми
func (uc *NotificationUseCase) List(limit int) []domain.Notification {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if limit <= 0 || limit > uc.size {
		limit = uc.size
	}
	out := make([]domain.Notification, 0, limit)
	for r := uc.next.Prev(); len(out) < limit; r = r.Prev() {
		out = append(out, r.Value.(domain.Notification))
	}
	return out
}
