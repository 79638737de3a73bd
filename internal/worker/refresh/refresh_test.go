package refresh_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/usecase"
	"github.com/paris-green-explorer/internal/worker"
	"github.com/paris-green-explorer/internal/worker/refresh"
)

type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) Refresh(ctx context.Context) *usecase.Catalog {
	r.calls.Add(1)
	return &usecase.Catalog{
		Units:   []domain.AdministrativeUnit{{ID: "1"}},
		Sources: map[domain.Kind]domain.DataSource{domain.KindUnits: domain.SourceLive},
	}
}

type countingCleaner struct {
	calls atomic.Int32
}

func (c *countingCleaner) CleanupExpired() int {
	c.calls.Add(1)
	return 1
}

func TestCatalogWorker_RefreshesUntilStopped(t *testing.T) {
	r := &countingRefresher{}
	w := refresh.NewCatalogWorker(r, 5*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Stop())
	require.NoError(t, <-done)
	assert.True(t, w.IsStopped())
}

func TestSessionWorker_StopsOnContextCancel(t *testing.T) {
	c := &countingCleaner{}
	w := refresh.NewSessionWorker(c, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool { return c.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	r := &countingRefresher{}
	c := &countingCleaner{}

	require.NoError(t, m.Register(refresh.NewCatalogWorker(r, 5*time.Millisecond, zap.NewNop())))
	require.NoError(t, m.Register(refresh.NewSessionWorker(c, 5*time.Millisecond, zap.NewNop())))
	assert.Equal(t, []string{"catalog-refresh", "session-sweeper"}, m.Names())

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Register(refresh.NewSessionWorker(c, time.Second, zap.NewNop())))

	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 && c.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, m.Stop(ctx))
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestBaseWorker_DisabledInterval(t *testing.T) {
	w := refresh.NewSessionWorker(&countingCleaner{}, 0, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	require.NoError(t, w.Stop())
	assert.NoError(t, <-done)
}
