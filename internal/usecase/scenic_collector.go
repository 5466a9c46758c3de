package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/scenic-tour/internal/config"
	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	"github.com/scenic-tour/internal/pkg/utils"
)

// minSeparationM - candidates closer than this to an origin, destination or stop are dropped
const minSeparationM = 50.0

// ScenicCollector - сбор кандидатов вдоль коридора маршрута
type ScenicCollector struct {
	gateway    repository.RoutingGateway
	categories []domain.CategoryProfile
	radius     float64
	spacing    float64
	maxSamples int
	logger     *zap.Logger
}

// NewScenicCollector - создание нового ScenicCollector.
// An empty category list searches every scenic category.
func NewScenicCollector(
	gateway repository.RoutingGateway,
	cfg *config.ScenicConfig,
	logger *zap.Logger,
) (*ScenicCollector, error) {
	categories := domain.ScenicCategories()
	if len(cfg.Categories) > 0 {
		categories = make([]domain.CategoryProfile, 0, len(cfg.Categories))
		for _, name := range cfg.Categories {
			profile, ok := domain.LookupCategory(domain.Category(name))
			if !ok {
				return nil, fmt.Errorf("unknown scenic category %q", name)
			}
			categories = append(categories, profile)
		}
	}
	if cfg.SearchRadiusM <= 0 {
		return nil, fmt.Errorf("scenic search radius must be positive")
	}

	spacing := cfg.SampleSpacingM
	if spacing <= 0 {
		spacing = 2 * cfg.SearchRadiusM
	}

	return &ScenicCollector{
		gateway:    gateway,
		categories: categories,
		radius:     cfg.SearchRadiusM,
		spacing:    spacing,
		maxSamples: cfg.MaxSamples,
		logger:     logger,
	}, nil
}

// Collect returns scored candidates near the route path, deduplicated by place id,
// in discovery order. Places within minSeparationM of any exclude point are skipped.
func (c *ScenicCollector) Collect(ctx context.Context, route *domain.Route, exclude []domain.Coordinate) ([]domain.Candidate, error) {
	path, err := utils.DecodePolyline(route.Polyline)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, nil
	}

	samples := utils.SamplePath(path, c.spacing, c.maxSamples)
	places, err := c.gateway.NearbySearch(ctx, samples, c.radius, c.categories)
	if err != nil {
		return nil, err
	}

	unique := dedupCandidates(places)

	candidates := make([]domain.Candidate, 0, len(unique))
	for _, p := range unique {
		if utils.DistanceToPath(p.Location, path) > c.radius {
			continue
		}
		if nearAny(p.Location, exclude, minSeparationM) {
			continue
		}
		scoreCandidate(&p)
		candidates = append(candidates, p)
	}

	c.logger.Debug("Scenic candidates collected",
		zap.Int("samples", len(samples)),
		zap.Int("places", len(places)),
		zap.Int("unique", len(unique)),
		zap.Int("candidates", len(candidates)))

	return candidates, nil
}

// dedupCandidates keeps one copy per place id at the position of its first discovery
func dedupCandidates(places []domain.Candidate) []domain.Candidate {
	index := make(map[string]int, len(places))
	result := make([]domain.Candidate, 0, len(places))
	for _, p := range places {
		i, seen := index[p.PlaceID]
		if !seen {
			index[p.PlaceID] = len(result)
			result = append(result, p)
			continue
		}
		if moreConfident(p, result[i]) {
			p.DiscoveryIndex = min(p.DiscoveryIndex, result[i].DiscoveryIndex)
			result[i] = p
		}
	}
	return result
}

// moreConfident: rated beats unrated, then more reviews, then more desirable category
func moreConfident(a, b domain.Candidate) bool {
	if a.HasRating() != b.HasRating() {
		return a.HasRating()
	}
	if a.ReviewCount() != b.ReviewCount() {
		return a.ReviewCount() > b.ReviewCount()
	}
	return a.Category.BaseWeight() > b.Category.BaseWeight()
}

func nearAny(p domain.Coordinate, points []domain.Coordinate, radius float64) bool {
	for _, q := range points {
		if utils.DistanceMeters(p, q) < radius {
			return true
		}
	}
	return false
}
