package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	"github.com/scenic-tour/internal/pkg/metrics"
)

// RouteSynthesizer - построение живописного маршрута через выбранные точки
type RouteSynthesizer struct {
	gateway  repository.RoutingGateway
	maxTrims int
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewRouteSynthesizer - создание нового RouteSynthesizer
func NewRouteSynthesizer(
	gateway repository.RoutingGateway,
	maxTrims int,
	m *metrics.Metrics,
	logger *zap.Logger,
) *RouteSynthesizer {
	if maxTrims < 0 {
		maxTrims = 0
	}
	return &RouteSynthesizer{
		gateway:  gateway,
		maxTrims: maxTrims,
		metrics:  m,
		logger:   logger,
	}
}

// Synthesize routes through the selected sequence. When the provider reports a duration
// over budget, the least desirable candidate is dropped and the route requested again.
// Returns nil without error when no acceptable scenic route exists.
func (s *RouteSynthesizer) Synthesize(
	ctx context.Context,
	req *domain.TourRequest,
	selection Selection,
	fastest *domain.Route,
	budgetSeconds float64,
) (*domain.Route, error) {
	sequence := selection.Sequence
	if selection.IsEmpty() {
		return nil, nil
	}

	for trims := 0; ; trims++ {
		route, err := s.gateway.Route(ctx, routeQuery(req, sequence))
		if err != nil {
			return nil, err
		}

		if float64(route.Duration.Seconds) <= budgetSeconds {
			if route.Polyline == fastest.Polyline {
				s.logger.Debug("Scenic route matches the fastest route, discarding")
				return nil, nil
			}
			route.ScenicPoints = sequenceCandidates(sequence)
			return route, nil
		}

		s.logger.Debug("Scenic route over budget",
			zap.Int("duration", route.Duration.Seconds),
			zap.Float64("budget", budgetSeconds),
			zap.Int("trims", trims))

		if trims >= s.maxTrims || countCandidates(sequence) <= 1 {
			return nil, nil
		}
		sequence = trimWeakest(sequence)
		s.metrics.ObserveTrim()
	}
}

// routeQuery maps the merged sequence onto provider locations; stops keep the caller's input
func routeQuery(req *domain.TourRequest, sequence []SequenceNode) repository.RouteQuery {
	last := len(sequence) - 1
	waypoints := make([]domain.Location, 0, len(sequence))
	for _, n := range sequence[1:last] {
		if n.Candidate != nil {
			waypoints = append(waypoints, domain.LocationAt(n.Candidate.Location))
			continue
		}
		waypoints = append(waypoints, req.Stops[n.BaseIndex-1].Location)
	}
	return repository.RouteQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
		Waypoints:   waypoints,
		Mode:        req.Mode,
	}
}

func sequenceCandidates(sequence []SequenceNode) []domain.Candidate {
	var result []domain.Candidate
	for _, n := range sequence {
		if n.Candidate != nil {
			result = append(result, *n.Candidate)
		}
	}
	return result
}

func countCandidates(sequence []SequenceNode) int {
	n := 0
	for _, node := range sequence {
		if node.Candidate != nil {
			n++
		}
	}
	return n
}

// trimWeakest removes the lowest weight candidate, the later one in travel order on ties
func trimWeakest(sequence []SequenceNode) []SequenceNode {
	weakest := -1
	for i, n := range sequence {
		if n.Candidate == nil {
			continue
		}
		if weakest < 0 || n.Candidate.Weight <= sequence[weakest].Candidate.Weight {
			weakest = i
		}
	}
	if weakest < 0 {
		return sequence
	}

	result := make([]SequenceNode, 0, len(sequence)-1)
	result = append(result, sequence[:weakest]...)
	return append(result, sequence[weakest+1:]...)
}
