package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
)

// MockRoutingGateway is a mock of RoutingGateway
type MockRoutingGateway struct {
	mock.Mock
}

func (m *MockRoutingGateway) Route(ctx context.Context, query repository.RouteQuery) (*domain.Route, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRoutingGateway) NearbySearch(ctx context.Context, corridor []domain.Coordinate, radius float64, categories []domain.CategoryProfile) ([]domain.Candidate, error) {
	args := m.Called(ctx, corridor, radius, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockRoutingGateway) PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaceDetails), args.Error(1)
}
