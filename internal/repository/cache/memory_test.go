package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryRepository_TTL(t *testing.T) {
	repo := newMemoryRepository(zap.NewNop())
	ctx := context.Background()

	val, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val, "miss returns nil, nil")

	require.NoError(t, repo.Set(ctx, "collection:units", []byte("payload"), 50*time.Millisecond))

	val, err = repo.Get(ctx, "collection:units")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), val)

	ok, _ := repo.Exists(ctx, "collection:units")
	assert.True(t, ok)

	assert.Eventually(t, func() bool {
		v, _ := repo.Get(ctx, "collection:units")
		return v == nil
	}, time.Second, 10*time.Millisecond, "entry expires at the end of the window")

	ok, _ = repo.Exists(ctx, "collection:units")
	assert.False(t, ok)
}

func TestMemoryRepository_ReadDoesNotExtendWindow(t *testing.T) {
	repo := newMemoryRepository(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), 80*time.Millisecond))

	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		if v, _ := repo.Get(ctx, "k"); v == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("entry kept alive by reads")
}

func TestMemoryRepository_ZeroTTLNeverExpires(t *testing.T) {
	repo := newMemoryRepository(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), 0))
	time.Sleep(20 * time.Millisecond)

	ok, err := repo.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryRepository_CopiesValues(t *testing.T) {
	repo := newMemoryRepository(zap.NewNop())
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, repo.Set(ctx, "k", in, 0))
	in[0] = 'x'

	out, _ := repo.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), out)
	out[1] = 'y'

	again, _ := repo.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryCacheRepository(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, repo.Delete(ctx, "k"))

	val, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestMemoryRepository_Concurrent(t *testing.T) {
	repo := NewMemoryCacheRepository(zap.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Set(ctx, "shared", []byte("v"), time.Minute)
			_, _ = repo.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	ok, _ := repo.Exists(ctx, "shared")
	assert.True(t, ok)
}
