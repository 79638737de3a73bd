package usecase_test

import (
	"context"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/paris-green-explorer/internal/domain"
	"github.com/paris-green-explorer/internal/repository/cache"
	"github.com/paris-green-explorer/internal/usecase"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockParisRepository is a mock of ParisDataRepository
type MockParisRepository struct {
	mock.Mock
}

func (m *MockParisRepository) FetchUnits(ctx context.Context) ([]domain.AdministrativeUnit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdministrativeUnit), args.Error(1)
}

func (m *MockParisRepository) FetchDistricts(ctx context.Context) ([]domain.District, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.District), args.Error(1)
}

func (m *MockParisRepository) FetchGreenSpaces(ctx context.Context) ([]domain.GreenSpace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GreenSpace), args.Error(1)
}

// MockBoundaryRepository is a mock of BoundaryRepository
type MockBoundaryRepository struct {
	mock.Mock
}

func (m *MockBoundaryRepository) FetchBoundaries(ctx context.Context, kind domain.Kind) (*geojson.FeatureCollection, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geojson.FeatureCollection), args.Error(1)
}

// MockPollutionRepository is a mock of PollutionRepository
type MockPollutionRepository struct {
	mock.Mock
}

func (m *MockPollutionRepository) FetchPollution(ctx context.Context, startDate, endDate string) (*domain.PollutionData, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PollutionData), args.Error(1)
}

// MockPlantingRepository is a mock of PlantingRepository
type MockPlantingRepository struct {
	mock.Mock
}

func (m *MockPlantingRepository) FetchSimulation(ctx context.Context, params domain.PlantingParams) (*domain.PlantingSimulation, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlantingSimulation), args.Error(1)
}

// MockAirQualityRepository is a mock of AirQualityRepository
type MockAirQualityRepository struct {
	mock.Mock
}

func (m *MockAirQualityRepository) FetchCurrent(ctx context.Context, point domain.LatLng) (*domain.AirQuality, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirQuality), args.Error(1)
}

// offlineParis - источник, который всегда падает: шлюз отдает резервные наборы
func offlineParis(err error) *MockParisRepository {
	m := &MockParisRepository{}
	m.On("FetchUnits", mock.Anything).Return(nil, err)
	m.On("FetchDistricts", mock.Anything).Return(nil, err)
	m.On("FetchGreenSpaces", mock.Anything).Return(nil, err)
	return m
}

// offlineBoundaries - выгрузки контуров недоступны
func offlineBoundaries(err error) *MockBoundaryRepository {
	m := &MockBoundaryRepository{}
	m.On("FetchBoundaries", mock.Anything, mock.Anything).Return(nil, err)
	return m
}

type testGateway struct {
	gateway    *usecase.GatewayUseCase
	boundaries *usecase.BoundaryUseCase
	feed       *usecase.NotificationUseCase
}

// newTestGateway собирает шлюз на кеше в памяти
func newTestGateway(paris *MockParisRepository, boundaries *MockBoundaryRepository) testGateway {
	logger := zap.NewNop()
	store := cache.NewMemoryCacheRepository(logger)
	feed := usecase.NewNotificationUseCase(10, logger)
	b := usecase.NewBoundaryUseCase(boundaries, store, logger, 24*time.Hour)
	return testGateway{
		gateway:    usecase.NewGatewayUseCase(paris, b, store, feed, logger, 5*time.Minute),
		boundaries: b,
		feed:       feed,
	}
}
