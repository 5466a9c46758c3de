package dto

import (
	"errors"
	"fmt"

	"github.com/scenic-tour/internal/domain"
)

// ErrIncompleteRoute is returned for routes missing required fields
var ErrIncompleteRoute = errors.New("incomplete route")

// AssembleTour converts a tour into the client contract. An incomplete fastest route
// is an error, an incomplete scenic route is dropped.
func AssembleTour(tour *domain.Tour) (*TourResponse, error) {
	if err := validateRoute(&tour.Fastest); err != nil {
		return nil, fmt.Errorf("fastest route: %w", err)
	}

	resp := &TourResponse{FastestRoute: convertRoute(&tour.Fastest, false)}
	if tour.Scenic != nil && validateRoute(tour.Scenic) == nil && len(tour.Scenic.ScenicPoints) > 0 {
		scenic := convertRoute(tour.Scenic, true)
		resp.ScenicRoute = &scenic
	}
	return resp, nil
}

func validateRoute(r *domain.Route) error {
	switch {
	case r.Distance.Text == "":
		return fmt.Errorf("%w: empty distance", ErrIncompleteRoute)
	case r.Duration.Text == "":
		return fmt.Errorf("%w: empty duration", ErrIncompleteRoute)
	case r.Polyline == "":
		return fmt.Errorf("%w: empty polyline", ErrIncompleteRoute)
	case len(r.Steps) == 0:
		return fmt.Errorf("%w: no steps", ErrIncompleteRoute)
	}
	return nil
}

func convertRoute(r *domain.Route, withPoints bool) RouteResponse {
	resp := RouteResponse{
		Distance: r.Distance.Text,
		Duration: r.Duration.Text,
		Steps:    make([]StepResponse, 0, len(r.Steps)),
		Polyline: r.Polyline,
	}
	for _, s := range r.Steps {
		resp.Steps = append(resp.Steps, StepResponse{
			Instruction: s.Instruction,
			Distance:    s.Distance.Text,
			Duration:    s.Duration.Text,
		})
	}
	if withPoints {
		resp.ScenicPoints = make([]ScenicPointResponse, 0, len(r.ScenicPoints))
		for _, c := range r.ScenicPoints {
			resp.ScenicPoints = append(resp.ScenicPoints, ConvertScenicPoint(c))
		}
	}
	return resp
}

// ConvertScenicPoint - преобразование кандидата в точку ответа
func ConvertScenicPoint(c domain.Candidate) ScenicPointResponse {
	return ScenicPointResponse{
		Location:         c.Location.String(),
		Type:             string(c.Category),
		Name:             c.Name,
		Weight:           c.Weight,
		PlaceID:          c.PlaceID,
		Rating:           c.Rating,
		UserRatingsTotal: c.UserRatingsTotal,
		PhotoReference:   c.PhotoReference,
		Address:          c.Address,
		Description:      c.Description,
		Website:          c.Website,
		Phone:            c.Phone,
		OpeningHours:     c.OpeningHours,
	}
}
