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
	"github.com/paris-green-explorer/internal/repository/cache"
	"github.com/paris-green-explorer/internal/usecase"
)

func TestPlantingUseCase_FetchPlanting(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("defaults are filled before the request", func(t *testing.T) {
		sim := &domain.PlantingSimulation{ZoneType: domain.ZoneUnit, ZoneID: "75011"}
		repo := &MockPlantingRepository{}
		repo.On("FetchSimulation", mock.Anything, mock.MatchedBy(func(p domain.PlantingParams) bool {
			return p.TopK == domain.DefaultPlantingTopK &&
				p.MaxPerRoad == domain.DefaultPlantingMaxPerRoad &&
				p.Plans == domain.DefaultPlantingPlans
		})).Return(sim, nil).Once()

		uc := usecase.NewPlantingUseCase(repo, cache.NewMemoryCacheRepository(logger), logger, time.Minute)
		params := domain.PlantingParams{ZoneType: domain.ZoneUnit, ZoneID: "75011"}

		got := uc.FetchPlanting(ctx, params)
		require.NotNil(t, got)
		assert.Equal(t, "75011", got.ZoneID)

		// повторный вызов отдается из кеша
		got = uc.FetchPlanting(ctx, params)
		require.NotNil(t, got)
		repo.AssertExpectations(t)
	})

	t.Run("failure yields nil", func(t *testing.T) {
		repo := &MockPlantingRepository{}
		repo.On("FetchSimulation", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		uc := usecase.NewPlantingUseCase(repo, nil, logger, time.Minute)
		assert.Nil(t, uc.FetchPlanting(ctx, domain.NewPlantingParams(domain.ZoneDistrict, "q1")))
	})

	t.Run("empty zone is not requested", func(t *testing.T) {
		repo := &MockPlantingRepository{}
		uc := usecase.NewPlantingUseCase(repo, nil, logger, time.Minute)
		assert.Nil(t, uc.FetchPlanting(ctx, domain.PlantingParams{}))
		repo.AssertNotCalled(t, "FetchSimulation", mock.Anything, mock.Anything)
	})
}
