package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/domain/fallback"
	"github.com/paris-green-explorer/internal/repository/cache"
	"github.com/paris-green-explorer/internal/usecase"
)

func TestDistrictPoint(t *testing.T) {
	want, ok := fallback.DistrictCenter("q1")
	require.True(t, ok)
	assert.Equal(t, want, usecase.DistrictPoint("q1"))
	assert.Equal(t, domain.ParisCenter, usecase.DistrictPoint("unknown"))
}

func TestAirQualityUseCase_FetchForDistrict(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("reading is cached per point", func(t *testing.T) {
		repo := &MockAirQualityRepository{}
		repo.On("FetchCurrent", mock.Anything, usecase.DistrictPoint("q1")).
			Return(&domain.AirQuality{EuropeanAQI: 18, Time: "2024-05-01T10:00"}, nil).Once()

		uc := usecase.NewAirQualityUseCase(repo, cache.NewMemoryCacheRepository(logger), logger, time.Minute)

		first := uc.FetchForDistrict(ctx, "q1")
		require.NotNil(t, first)
		second := uc.FetchForDistrict(ctx, "q1")
		require.NotNil(t, second)
		assert.Equal(t, first.EuropeanAQI, second.EuropeanAQI)
		repo.AssertExpectations(t)
	})

	t.Run("failure yields nil", func(t *testing.T) {
		repo := &MockAirQualityRepository{}
		repo.On("FetchCurrent", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		uc := usecase.NewAirQualityUseCase(repo, nil, logger, time.Minute)
		assert.Nil(t, uc.FetchAt(ctx, domain.ParisCenter))
	})
}
