package google

import (
	"context"
	"net/url"
	"strings"

	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	"github.com/scenic-tour/internal/pkg/utils"
	"go.uber.org/zap"
)

// Route возвращает маршрут через точки в заданном порядке
func (c *client) Route(ctx context.Context, query repository.RouteQuery) (*domain.Route, error) {
	if !query.Mode.SupportsWaypoints() && len(query.Waypoints) > 0 {
		return c.chainLegs(ctx, query)
	}

	params := url.Values{}
	params.Set("origin", query.Origin.String())
	params.Set("destination", query.Destination.String())
	params.Set("mode", string(query.Mode))
	if len(query.Waypoints) > 0 {
		wps := make([]string, len(query.Waypoints))
		for i, wp := range query.Waypoints {
			wps[i] = wp.String()
		}
		// order is fixed by the caller, the provider must not reorder stops
		params.Set("waypoints", "optimize:false|"+strings.Join(wps, "|"))
	}

	c.logger.Debug("Calling Google Directions API",
		zap.String("origin", query.Origin.String()),
		zap.String("destination", query.Destination.String()),
		zap.String("mode", string(query.Mode)),
		zap.Int("waypoints", len(query.Waypoints)))

	var resp directionsResponse
	if err := c.getJSON(ctx, opDirections, directionsPath, params, &resp, false); err != nil {
		return nil, err
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, &domain.ProviderError{Kind: domain.NoRouteFound, Op: opDirections, Status: statusZeroResults}
	}

	return buildRoute(resp.Routes[0].Legs, resp.Routes[0].OverviewPolyline.Points), nil
}

// chainLegs composes a multi-stop route from single-leg requests for modes
// where the provider rejects waypoints
func (c *client) chainLegs(ctx context.Context, query repository.RouteQuery) (*domain.Route, error) {
	points := make([]domain.Location, 0, len(query.Waypoints)+2)
	points = append(points, query.Origin)
	points = append(points, query.Waypoints...)
	points = append(points, query.Destination)

	var routes []*domain.Route
	for i := 1; i < len(points); i++ {
		r, err := c.Route(ctx, repository.RouteQuery{
			Origin:      points[i-1],
			Destination: points[i],
			Mode:        query.Mode,
		})
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}

	return mergeRoutes(routes)
}

func buildRoute(legs []directionsLeg, overview string) *domain.Route {
	route := &domain.Route{Polyline: overview}

	meters, seconds := 0, 0
	for _, leg := range legs {
		route.Legs = append(route.Legs, domain.Leg{
			Start:    domain.Coordinate{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
			End:      domain.Coordinate{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
			Distance: domain.Distance{Text: leg.Distance.Text, Meters: leg.Distance.Value},
			Duration: domain.Duration{Text: leg.Duration.Text, Seconds: leg.Duration.Value},
		})
		for _, step := range leg.Steps {
			route.Steps = append(route.Steps, domain.Step{
				Instruction: step.HTMLInstructions,
				Distance:    domain.Distance{Text: step.Distance.Text, Meters: step.Distance.Value},
				Duration:    domain.Duration{Text: step.Duration.Text, Seconds: step.Duration.Value},
			})
		}
		meters += leg.Distance.Value
		seconds += leg.Duration.Value
	}

	if len(legs) == 1 {
		route.Distance = domain.Distance{Text: legs[0].Distance.Text, Meters: meters}
		route.Duration = domain.Duration{Text: legs[0].Duration.Text, Seconds: seconds}
	} else {
		route.Distance = domain.Distance{Text: utils.FormatDistance(meters), Meters: meters}
		route.Duration = domain.Duration{Text: utils.FormatDuration(seconds), Seconds: seconds}
	}
	return route
}

func mergeRoutes(routes []*domain.Route) (*domain.Route, error) {
	merged := &domain.Route{}
	var path []domain.Coordinate
	for _, r := range routes {
		merged.Legs = append(merged.Legs, r.Legs...)
		merged.Steps = append(merged.Steps, r.Steps...)
		merged.Distance.Meters += r.Distance.Meters
		merged.Duration.Seconds += r.Duration.Seconds

		segment, err := utils.DecodePolyline(r.Polyline)
		if err != nil {
			return nil, &domain.ProviderError{Kind: domain.ProviderUnavailable, Op: opDirections, Err: err}
		}
		// consecutive legs share their joint point
		if len(path) > 0 && len(segment) > 0 && path[len(path)-1] == segment[0] {
			segment = segment[1:]
		}
		path = append(path, segment...)
	}

	merged.Polyline = utils.EncodePolyline(path)
	merged.Distance.Text = utils.FormatDistance(merged.Distance.Meters)
	merged.Duration.Text = utils.FormatDuration(merged.Duration.Seconds)
	return merged, nil
}
