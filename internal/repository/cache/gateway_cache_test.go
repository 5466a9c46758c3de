package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scenic-tour/internal/config"
	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Route(ctx context.Context, query repository.RouteQuery) (*domain.Route, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockGateway) NearbySearch(ctx context.Context, corridor []domain.Coordinate, radius float64, categories []domain.CategoryProfile) ([]domain.Candidate, error) {
	args := m.Called(ctx, corridor, radius, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockGateway) PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaceDetails), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCache) GetNearby(ctx context.Context, key string) ([]domain.Candidate, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Candidate), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetNearby(ctx context.Context, key string, places []domain.Candidate, ttl time.Duration) error {
	return m.Called(ctx, key, places, ttl).Error(0)
}

func (m *MockCache) GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaceDetails), args.Error(1)
}

func (m *MockCache) SetPlaceDetails(ctx context.Context, details *domain.PlaceDetails, ttl time.Duration) error {
	return m.Called(ctx, details, ttl).Error(0)
}

func (m *MockCache) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var testCacheConfig = &config.CacheConfig{Enabled: true, NearbyTTL: time.Hour, DetailsTTL: 2 * time.Hour}

func TestCachedGateway_NearbySearch(t *testing.T) {
	ctx := context.Background()
	corridor := []domain.Coordinate{{Lat: 41.38, Lng: 2.17}}
	categories := domain.ScenicCategories()
	key := NearbyKey(corridor, 5000, categories)
	places := []domain.Candidate{{PlaceID: "p1", Name: "Pier", Category: domain.CategoryCoastal}}

	t.Run("cache hit skips provider", func(t *testing.T) {
		gw := new(MockGateway)
		store := new(MockCache)
		store.On("GetNearby", ctx, key).Return(places, true, nil)

		result, err := NewCachedGateway(gw, store, testCacheConfig, zap.NewNop()).NearbySearch(ctx, corridor, 5000, categories)
		require.NoError(t, err)
		assert.Equal(t, places, result)
		gw.AssertNotCalled(t, "NearbySearch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("miss stores provider result", func(t *testing.T) {
		gw := new(MockGateway)
		store := new(MockCache)
		store.On("GetNearby", ctx, key).Return(nil, false, nil)
		gw.On("NearbySearch", ctx, corridor, 5000.0, categories).Return(places, nil)
		store.On("SetNearby", ctx, key, places, time.Hour).Return(nil)

		result, err := NewCachedGateway(gw, store, testCacheConfig, zap.NewNop()).NearbySearch(ctx, corridor, 5000, categories)
		require.NoError(t, err)
		assert.Equal(t, places, result)
		gw.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("cache failure falls through", func(t *testing.T) {
		gw := new(MockGateway)
		store := new(MockCache)
		store.On("GetNearby", ctx, key).Return(nil, false, errors.New("connection refused"))
		gw.On("NearbySearch", ctx, corridor, 5000.0, categories).Return(places, nil)
		store.On("SetNearby", ctx, key, places, time.Hour).Return(errors.New("connection refused"))

		result, err := NewCachedGateway(gw, store, testCacheConfig, zap.NewNop()).NearbySearch(ctx, corridor, 5000, categories)
		require.NoError(t, err)
		assert.Equal(t, places, result)
	})

	t.Run("provider error is not cached", func(t *testing.T) {
		gw := new(MockGateway)
		store := new(MockCache)
		providerErr := &domain.ProviderError{Kind: domain.ProviderUnavailable, Op: "nearby_search"}
		store.On("GetNearby", ctx, key).Return(nil, false, nil)
		gw.On("NearbySearch", ctx, corridor, 5000.0, categories).Return(nil, providerErr)

		_, err := NewCachedGateway(gw, store, testCacheConfig, zap.NewNop()).NearbySearch(ctx, corridor, 5000, categories)
		assert.ErrorIs(t, err, providerErr)
		store.AssertNotCalled(t, "SetNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCachedGateway_PlaceDetails(t *testing.T) {
	ctx := context.Background()
	details := &domain.PlaceDetails{PlaceID: "p1", Address: "1 Harbour St"}

	t.Run("hit", func(t *testing.T) {
		gw := new(MockGateway)
		store := new(MockCache)
		store.On("GetPlaceDetails", ctx, "p1").Return(details, nil)

		result, err := NewCachedGateway(gw, store, testCacheConfig, zap.NewNop()).PlaceDetails(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, details, result)
		gw.AssertNotCalled(t, "PlaceDetails", mock.Anything, mock.Anything)
	})

	t.Run("miss", func(t *testing.T) {
		gw := new(MockGateway)
		store := new(MockCache)
		store.On("GetPlaceDetails", ctx, "p1").Return(nil, nil)
		gw.On("PlaceDetails", ctx, "p1").Return(details, nil)
		store.On("SetPlaceDetails", ctx, details, 2*time.Hour).Return(nil)

		result, err := NewCachedGateway(gw, store, testCacheConfig, zap.NewNop()).PlaceDetails(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, details, result)
		store.AssertExpectations(t)
	})
}

func TestCachedGateway_RouteIsNotCached(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	store := new(MockCache)
	query := repository.RouteQuery{Origin: domain.NewLocation("A"), Destination: domain.NewLocation("B"), Mode: domain.TravelModeDriving}
	route := &domain.Route{Polyline: "abc"}
	gw.On("Route", ctx, query).Return(route, nil).Twice()

	cached := NewCachedGateway(gw, store, testCacheConfig, zap.NewNop())
	for i := 0; i < 2; i++ {
		result, err := cached.Route(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, route, result)
	}
	gw.AssertExpectations(t)
	store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestNearbyKey(t *testing.T) {
	categories := domain.ScenicCategories()
	a := NearbyKey([]domain.Coordinate{{Lat: 41.380001, Lng: 2.170001}}, 5000, categories)
	b := NearbyKey([]domain.Coordinate{{Lat: 41.380002, Lng: 2.170002}}, 5000, categories)
	c := NearbyKey([]domain.Coordinate{{Lat: 41.380001, Lng: 2.170001}}, 3000, categories)
	d := NearbyKey([]domain.Coordinate{{Lat: 41.380001, Lng: 2.170001}}, 5000, categories[:1])

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}
