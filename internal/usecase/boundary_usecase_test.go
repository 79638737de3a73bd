package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/repository/cache"
	"github.com/paris-green-explorer/internal/usecase"
)

func TestBoundaryUseCase_FetchBoundaries(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("live collection is cached", func(t *testing.T) {
		fc := geojson.NewFeatureCollection()
		fc.Append(geojson.NewFeature(orb.Polygon{{{2.3, 48.8}, {2.4, 48.8}, {2.4, 48.9}, {2.3, 48.8}}}))

		repo := &MockBoundaryRepository{}
		repo.On("FetchBoundaries", mock.Anything, domain.KindDistricts).Return(fc, nil).Once()

		uc := usecase.NewBoundaryUseCase(repo, cache.NewMemoryCacheRepository(logger), logger, time.Hour)

		got, source := uc.FetchBoundaries(ctx, domain.KindDistricts)
		assert.Equal(t, domain.SourceLive, source)
		assert.Len(t, got.Features, 1)

		got, source = uc.FetchBoundaries(ctx, domain.KindDistricts)
		assert.Equal(t, domain.SourceCache, source)
		assert.Len(t, got.Features, 1)
		repo.AssertExpectations(t)
	})

	t.Run("unit fallback has twenty shapes", func(t *testing.T) {
		uc := usecase.NewBoundaryUseCase(offlineBoundaries(errors.New("down")), nil, logger, time.Hour)

		got, source := uc.FetchBoundaries(ctx, domain.KindUnits)
		assert.Equal(t, domain.SourceFallback, source)
		require.NotNil(t, got)
		assert.Len(t, got.Features, 20)
	})

	t.Run("other kinds fall back to empty collections", func(t *testing.T) {
		uc := usecase.NewBoundaryUseCase(offlineBoundaries(errors.New("down")), cache.NewMemoryCacheRepository(logger), logger, time.Hour)

		got, source := uc.FetchBoundaries(ctx, domain.KindGreenSpaces)
		assert.Equal(t, domain.SourceFallback, source)
		require.NotNil(t, got)
		assert.Empty(t, got.Features)

		_, source = uc.FetchBoundaries(ctx, domain.KindGreenSpaces)
		assert.Equal(t, domain.SourceFallback, source)
	})
}
