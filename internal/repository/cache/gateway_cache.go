package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/scenic-tour/internal/config"
	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	"go.uber.org/zap"
)

// cachedGateway caches place lookups of the wrapped gateway.
// Directions are never cached; cache failures fall through to the provider.
type cachedGateway struct {
	inner  repository.RoutingGateway
	cache  repository.CacheRepository
	cfg    *config.CacheConfig
	logger *zap.Logger
}

func NewCachedGateway(
	inner repository.RoutingGateway,
	cache repository.CacheRepository,
	cfg *config.CacheConfig,
	logger *zap.Logger,
) repository.RoutingGateway {
	return &cachedGateway{
		inner:  inner,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

func (g *cachedGateway) Route(ctx context.Context, query repository.RouteQuery) (*domain.Route, error) {
	return g.inner.Route(ctx, query)
}

func (g *cachedGateway) NearbySearch(
	ctx context.Context,
	corridor []domain.Coordinate,
	radiusMeters float64,
	categories []domain.CategoryProfile,
) ([]domain.Candidate, error) {
	key := NearbyKey(corridor, radiusMeters, categories)

	places, ok, err := g.cache.GetNearby(ctx, key)
	if err != nil {
		g.logger.Warn("Nearby cache lookup failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		g.logger.Debug("Nearby cache hit", zap.String("key", key), zap.Int("places", len(places)))
		return places, nil
	}

	places, err = g.inner.NearbySearch(ctx, corridor, radiusMeters, categories)
	if err != nil {
		return nil, err
	}

	if err := g.cache.SetNearby(ctx, key, places, g.cfg.NearbyTTL); err != nil {
		g.logger.Warn("Failed to cache nearby places", zap.String("key", key), zap.Error(err))
	}
	return places, nil
}

func (g *cachedGateway) PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	details, err := g.cache.GetPlaceDetails(ctx, placeID)
	if err != nil {
		g.logger.Warn("Place details cache lookup failed", zap.String("place_id", placeID), zap.Error(err))
	} else if details != nil {
		return details, nil
	}

	details, err = g.inner.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if err := g.cache.SetPlaceDetails(ctx, details, g.cfg.DetailsTTL); err != nil {
		g.logger.Warn("Failed to cache place details", zap.String("place_id", placeID), zap.Error(err))
	}
	return details, nil
}

// NearbyKey identifies a nearby search. Coordinates are rounded to ~10 m so
// polylines differing only in encoding noise share an entry.
func NearbyKey(corridor []domain.Coordinate, radiusMeters float64, categories []domain.CategoryProfile) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(radiusMeters)))
	for _, c := range categories {
		b.WriteByte('|')
		b.WriteString(string(c.Category))
	}
	for _, p := range corridor {
		b.WriteByte(';')
		b.WriteString(strconv.FormatFloat(p.Lat, 'f', 4, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Lng, 'f', 4, 64))
	}
	return strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}
