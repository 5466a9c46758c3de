package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/scenic-tour/internal/config"
	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	apperrors "github.com/scenic-tour/internal/pkg/errors"
	"github.com/scenic-tour/internal/pkg/metrics"
	"github.com/scenic-tour/internal/pkg/validator"
	"github.com/scenic-tour/internal/usecase/dto"
)

// TourUseCase - use case для построения быстрого и живописного маршрутов
type TourUseCase struct {
	gateway     repository.RoutingGateway
	collector   *ScenicCollector
	synthesizer *RouteSynthesizer
	maxPoints   int
	concurrency int
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTourUseCase - создание нового TourUseCase
func NewTourUseCase(
	gateway repository.RoutingGateway,
	collector *ScenicCollector,
	synthesizer *RouteSynthesizer,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TourUseCase {
	return &TourUseCase{
		gateway:     gateway,
		collector:   collector,
		synthesizer: synthesizer,
		maxPoints:   cfg.Scenic.MaxPoints,
		concurrency: max(cfg.Google.Concurrency, 1),
		metrics:     m,
		logger:      logger,
	}
}

// PlanTour builds the fastest route and, when requested, a scenic alternative within
// the tolerance budget. Scenic failures never fail the request.
func (uc *TourUseCase) PlanTour(ctx context.Context, req dto.TourRequest) (*dto.TourResponse, error) {
	req.Normalize()
	if err := validator.Validate(&req); err != nil {
		return nil, apperrors.ErrInvalidRequest.WithDetails(validator.Details(err))
	}

	tour := req.ToDomain()
	log := uc.logger.With(
		zap.String("origin", tour.Origin.String()),
		zap.String("destination", tour.Destination.String()),
		zap.String("mode", string(tour.Mode)),
		zap.Int("stops", len(tour.Stops)),
		zap.Bool("scenic", tour.Scenic),
	)

	fastest, err := uc.gateway.Route(ctx, repository.RouteQuery{
		Origin:      tour.Origin,
		Destination: tour.Destination,
		Waypoints:   tour.StopLocations(),
		Mode:        tour.Mode,
	})
	if err != nil {
		log.Error("Failed to build fastest route", zap.Error(err))
		uc.metrics.ObserveTour(metrics.OutcomeFailed, 0)
		return nil, mapProviderError(ctx, err)
	}

	result := &domain.Tour{Fastest: *fastest}
	if tour.Scenic {
		scenic, err := uc.buildScenic(ctx, tour, fastest, log)
		if err != nil {
			if ctx.Err() != nil {
				uc.metrics.ObserveTour(metrics.OutcomeFailed, 0)
				return nil, mapProviderError(ctx, ctx.Err())
			}
			log.Warn("Scenic route unavailable, returning fastest route only", zap.Error(err))
		}
		result.Scenic = scenic
	}

	resp, err := dto.AssembleTour(result)
	if err != nil {
		log.Error("Failed to assemble tour response", zap.Error(err))
		uc.metrics.ObserveTour(metrics.OutcomeFailed, 0)
		return nil, apperrors.ErrInternalServer
	}

	if resp.ScenicRoute != nil {
		uc.metrics.ObserveTour(metrics.OutcomeScenic, len(resp.ScenicRoute.ScenicPoints))
		log.Info("Tour built",
			zap.String("fastest", resp.FastestRoute.Duration),
			zap.String("scenic", resp.ScenicRoute.Duration),
			zap.Int("scenic_points", len(resp.ScenicRoute.ScenicPoints)))
	} else {
		uc.metrics.ObserveTour(metrics.OutcomeFastestOnly, 0)
		log.Info("Tour built", zap.String("fastest", resp.FastestRoute.Duration))
	}

	return resp, nil
}

// buildScenic returns nil without error when no scenic route fits the budget
func (uc *TourUseCase) buildScenic(
	ctx context.Context,
	tour *domain.TourRequest,
	fastest *domain.Route,
	log *zap.Logger,
) (*domain.Route, error) {
	base := fastest.Waypoints()
	if len(base) != len(tour.Stops)+2 {
		log.Warn("Fastest route legs do not match the requested stops", zap.Int("points", len(base)))
		return nil, nil
	}

	candidates, err := uc.collector.Collect(ctx, fastest, base)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		log.Debug("No scenic candidates along the route")
		return nil, nil
	}

	budget := tour.BudgetSeconds(fastest.Duration.Seconds)
	selection := SelectWaypoints(SelectionInput{
		Base:           base,
		Candidates:     candidates,
		FastestSeconds: fastest.Duration.Seconds,
		BudgetSeconds:  budget,
		MaxPoints:      uc.maxPoints,
		Mode:           tour.Mode,
	})
	log.Debug("Scenic waypoints selected",
		zap.Int("candidates", len(candidates)),
		zap.Int("selected", len(selection.Inserted)),
		zap.Float64("projected_seconds", selection.ProjectedSeconds),
		zap.Float64("budget_seconds", budget))

	scenic, err := uc.synthesizer.Synthesize(ctx, tour, selection, fastest, budget)
	if err != nil || scenic == nil {
		return nil, err
	}

	uc.enrichPoints(ctx, scenic.ScenicPoints, log)
	return scenic, nil
}

// enrichPoints loads place details concurrently; a failed lookup keeps nearby search metadata.
// Ratings filled in from details are reflected in the weight, travel order is kept.
func (uc *TourUseCase) enrichPoints(ctx context.Context, points []domain.Candidate, log *zap.Logger) {
	var g errgroup.Group
	g.SetLimit(uc.concurrency)

	for i := range points {
		i := i
		g.Go(func() error {
			details, err := uc.gateway.PlaceDetails(ctx, points[i].PlaceID)
			if err != nil {
				log.Warn("Failed to load place details",
					zap.String("place_id", points[i].PlaceID),
					zap.Error(err))
				return nil
			}
			points[i].ApplyDetails(details)
			scoreCandidate(&points[i])
			return nil
		})
	}
	_ = g.Wait()
}

// mapProviderError converts gateway failures into API errors with generic messages
func mapProviderError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.ErrProviderTimeout
	}

	kind, ok := domain.ProviderErrorKindOf(err)
	if !ok {
		return apperrors.ErrProviderUnavailable
	}
	switch kind {
	case domain.NoRouteFound, domain.InvalidLocation:
		return apperrors.ErrNoRouteFound
	case domain.ProviderTimeout:
		return apperrors.ErrProviderTimeout
	default:
		return apperrors.ErrProviderUnavailable
	}
}
