package repository

import (
	"context"

	"github.com/scenic-tour/internal/domain"
)

// RouteQuery - ordered route request sent to the provider
type RouteQuery struct {
	Origin      domain.Location
	Destination domain.Location
	Waypoints   []domain.Location
	Mode        domain.TravelMode
}

// RoutingGateway определяет операции внешнего картографического провайдера.
// Implementations must be safe for concurrent use and return *domain.ProviderError on failure.
type RoutingGateway interface {
	// Route returns the route through the waypoints in the given order
	Route(ctx context.Context, query RouteQuery) (*domain.Route, error)

	// NearbySearch returns places of the categories within radius of any corridor point.
	// An empty result is not an error.
	NearbySearch(
		ctx context.Context,
		corridor []domain.Coordinate,
		radiusMeters float64,
		categories []domain.CategoryProfile,
	) ([]domain.Candidate, error)

	// PlaceDetails returns extended metadata of a place
	PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error)
}
