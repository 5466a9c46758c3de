package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/scenic-tour/internal/domain"
)

// TourRequest - запрос на построение маршрута
type TourRequest struct {
	Origin       string   `json:"origin" validate:"required,max=512" example:"Barcelona, Spain"`
	Destination  string   `json:"destination" validate:"required,max=512" example:"Girona, Spain"`
	Waypoints    []string `json:"waypoints,omitempty" validate:"max=5,dive,required,max=512"`
	Mode         string   `json:"mode,omitempty" validate:"omitempty,oneof=driving walking bicycling transit" example:"driving"`
	Scenic       bool     `json:"scenic,omitempty"`
	ETATolerance *int     `json:"eta_tolerance,omitempty" validate:"omitempty,min=10,max=75" example:"30"`
}

// Normalize trims free text input and applies defaults for omitted fields
func (r *TourRequest) Normalize() {
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	for i, wp := range r.Waypoints {
		r.Waypoints[i] = strings.TrimSpace(wp)
	}
	if r.Mode == "" {
		r.Mode = string(domain.TravelModeDriving)
	}
}

// ToDomain converts a validated request; every stop gets a fresh id
func (r *TourRequest) ToDomain() *domain.TourRequest {
	tolerance := domain.DefaultETATolerance
	if r.ETATolerance != nil {
		tolerance = *r.ETATolerance
	}

	stops := make([]domain.Stop, len(r.Waypoints))
	for i, wp := range r.Waypoints {
		stops[i] = domain.Stop{ID: uuid.New(), Location: domain.NewLocation(wp)}
	}

	return &domain.TourRequest{
		Origin:       domain.NewLocation(r.Origin),
		Destination:  domain.NewLocation(r.Destination),
		Stops:        stops,
		Mode:         domain.TravelMode(r.Mode),
		Scenic:       r.Scenic,
		ETATolerance: tolerance,
	}
}
