package google

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/scenic-tour/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type nearbyJob struct {
	center  domain.Coordinate
	profile domain.CategoryProfile
}

// NearbySearch ищет места каждой категории вокруг каждой точки коридора.
// Queries run concurrently; results keep query order so discovery order is deterministic.
func (c *client) NearbySearch(
	ctx context.Context,
	corridor []domain.Coordinate,
	radiusMeters float64,
	categories []domain.CategoryProfile,
) ([]domain.Candidate, error) {
	if len(corridor) == 0 || len(categories) == 0 {
		return nil, nil
	}
	if radiusMeters <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}

	jobs := make([]nearbyJob, 0, len(corridor)*len(categories))
	for _, center := range corridor {
		for _, profile := range categories {
			jobs = append(jobs, nearbyJob{center: center, profile: profile})
		}
	}

	results := make([][]domain.Candidate, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			places, err := c.nearbyOnce(gctx, job, radiusMeters)
			if err != nil {
				return err
			}
			results[i] = places
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var candidates []domain.Candidate
	for _, places := range results {
		for _, p := range places {
			p.DiscoveryIndex = len(candidates)
			candidates = append(candidates, p)
		}
	}

	c.logger.Debug("Nearby search completed",
		zap.Int("queries", len(jobs)),
		zap.Int("places", len(candidates)))

	return candidates, nil
}

func (c *client) nearbyOnce(ctx context.Context, job nearbyJob, radiusMeters float64) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("location", job.center.String())
	params.Set("radius", strconv.Itoa(int(radiusMeters)))
	params.Set("keyword", job.profile.Keyword)

	var resp nearbyResponse
	if err := c.getJSON(ctx, opNearby, nearbyPath, params, &resp, true); err != nil {
		return nil, err
	}

	places := make([]domain.Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.PlaceID == "" {
			continue
		}
		candidate := domain.Candidate{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			Location:         domain.Coordinate{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
			Category:         job.profile.Category,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
			Address:          r.Vicinity,
		}
		if len(r.Photos) > 0 {
			candidate.PhotoReference = r.Photos[0].PhotoReference
		}
		places = append(places, candidate)
	}
	return places, nil
}

// PlaceDetails возвращает расширенную информацию о месте
func (c *client) PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	if placeID == "" {
		return nil, &domain.ProviderError{Kind: domain.InvalidLocation, Op: opDetails, Status: statusInvalidRequest}
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var resp detailsResponse
	if err := c.getJSON(ctx, opDetails, detailsPath, params, &resp, false); err != nil {
		return nil, err
	}

	r := resp.Result
	details := &domain.PlaceDetails{
		PlaceID:          placeID,
		Address:          r.FormattedAddress,
		Description:      r.EditorialSummary.Overview,
		Website:          r.Website,
		Phone:            r.FormattedPhoneNumber,
		OpeningHours:     r.OpeningHours.WeekdayText,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
	}
	if len(r.Photos) > 0 {
		details.PhotoReference = r.Photos[0].PhotoReference
	}
	return details, nil
}
