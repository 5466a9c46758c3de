package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scenic-tour/internal/config"
	"github.com/scenic-tour/internal/delivery/http/handler"
	"github.com/scenic-tour/internal/delivery/http/middleware"
	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	"github.com/scenic-tour/internal/pkg/metrics"
	"github.com/scenic-tour/internal/pkg/utils"
	"github.com/scenic-tour/internal/usecase"
)

// stubGateway answers every directions query with the same route
type stubGateway struct {
	route    *domain.Route
	routeErr error
	calls    int
}

func (g *stubGateway) Route(ctx context.Context, query repository.RouteQuery) (*domain.Route, error) {
	g.calls++
	if g.routeErr != nil {
		return nil, g.routeErr
	}
	return g.route, nil
}

func (g *stubGateway) NearbySearch(ctx context.Context, corridor []domain.Coordinate, radius float64, categories []domain.CategoryProfile) ([]domain.Candidate, error) {
	return nil, nil
}

func (g *stubGateway) PlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	return nil, errors.New("not found")
}

type failingCheck struct{}

func (failingCheck) Health(ctx context.Context) error {
	return errors.New("connection refused")
}

func newTestServer(t *testing.T, gw repository.RoutingGateway) *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, AllowOrigins: "*", RequestTimeout: 5 * time.Second},
		Google: config.GoogleConfig{Concurrency: 2},
		Scenic: config.ScenicConfig{SearchRadiusM: 5000, MaxSamples: 8, MaxPoints: 5, MaxTrims: 4},
	}
	logger := zap.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	collector, err := usecase.NewScenicCollector(gw, &cfg.Scenic, logger)
	require.NoError(t, err)
	synthesizer := usecase.NewRouteSynthesizer(gw, cfg.Scenic.MaxTrims, m, logger)
	tourUC := usecase.NewTourUseCase(gw, collector, synthesizer, cfg, m, logger)

	health := handler.NewHealthHandler(map[string]handler.HealthChecker{"redis": failingCheck{}}, logger)
	return NewServer(cfg, logger, handler.NewTourHandler(tourUC, cfg.Server.RequestTimeout, logger), health, reg)
}

func sampleFastest() *domain.Route {
	path := []domain.Coordinate{{Lat: 41.38, Lng: 2.17}, {Lat: 41.98, Lng: 2.82}}
	return &domain.Route{
		Distance: domain.Distance{Text: "103 km", Meters: 103000},
		Duration: domain.Duration{Text: "1 hour 12 mins", Seconds: 4320},
		Steps:    []domain.Step{{Instruction: "Take the <b>AP-7</b>", Distance: domain.Distance{Text: "103 km"}, Duration: domain.Duration{Text: "1 hour 12 mins"}}},
		Legs:     []domain.Leg{{Start: path[0], End: path[1]}},
		Polyline: utils.EncodePolyline(path),
	}
}

func postTour(t *testing.T, s *Server, body string) (int, map[string]json.RawMessage) {
	req := httptest.NewRequest(fiber.MethodPost, "/api/tour", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &parsed), string(raw))
	return resp.StatusCode, parsed
}

func TestServer_Tour(t *testing.T) {
	t.Run("fastest route only", func(t *testing.T) {
		s := newTestServer(t, &stubGateway{route: sampleFastest()})
		status, body := postTour(t, s, `{"origin":"Barcelona","destination":"Girona","mode":"driving","scenic":false}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, "fastest_route")
		assert.NotContains(t, body, "scenic_route")
		assert.NotContains(t, body, "data")

		var fastest struct {
			Distance string `json:"distance"`
			Duration string `json:"duration"`
			Steps    []struct {
				Instruction string `json:"instruction"`
			} `json:"steps"`
			Polyline string `json:"polyline"`
		}
		require.NoError(t, json.Unmarshal(body["fastest_route"], &fastest))
		assert.Equal(t, "103 km", fastest.Distance)
		assert.Equal(t, "1 hour 12 mins", fastest.Duration)
		require.Len(t, fastest.Steps, 1)
		assert.Equal(t, "Take the <b>AP-7</b>", fastest.Steps[0].Instruction)
		assert.NotEmpty(t, fastest.Polyline)
	})

	t.Run("scenic without candidates falls back to fastest", func(t *testing.T) {
		s := newTestServer(t, &stubGateway{route: sampleFastest()})
		status, body := postTour(t, s, `{"origin":"Barcelona","destination":"Girona","scenic":true,"eta_tolerance":30}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.NotContains(t, body, "scenic_route")
	})

	t.Run("invalid request", func(t *testing.T) {
		gw := &stubGateway{route: sampleFastest()}
		s := newTestServer(t, gw)
		status, body := postTour(t, s, `{"origin":"Barcelona","destination":"Girona","eta_tolerance":90}`)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body["error"]), "INVALID_REQUEST")
		assert.Contains(t, string(body["error"]), "eta_tolerance")
		assert.Zero(t, gw.calls)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, &stubGateway{route: sampleFastest()})
		status, body := postTour(t, s, `{"origin":`)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body["error"]), "INVALID_REQUEST")
	})

	t.Run("no route found", func(t *testing.T) {
		s := newTestServer(t, &stubGateway{routeErr: &domain.ProviderError{Kind: domain.NoRouteFound, Op: "directions"}})
		status, body := postTour(t, s, `{"origin":"Barcelona","destination":"New York","mode":"walking"}`)

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Contains(t, string(body["error"]), "NO_ROUTE_FOUND")
	})

	t.Run("provider failure is generic", func(t *testing.T) {
		s := newTestServer(t, &stubGateway{routeErr: &domain.ProviderError{Kind: domain.ProviderUnavailable, Op: "directions", Status: "REQUEST_DENIED"}})
		status, body := postTour(t, s, `{"origin":"Barcelona","destination":"Girona"}`)

		assert.Equal(t, fiber.StatusBadGateway, status)
		assert.Contains(t, string(body["error"]), "Failed to generate route")
		assert.NotContains(t, string(body["error"]), "REQUEST_DENIED")
	})
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, &stubGateway{route: sampleFastest()})

	resp, err := s.App().Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "unavailable", body.Dependencies["redis"])
}

func TestServer_MetricsAndRequestID(t *testing.T) {
	s := newTestServer(t, &stubGateway{route: sampleFastest()})
	postTour(t, s, `{"origin":"Barcelona","destination":"Girona"}`)

	req := httptest.NewRequest(fiber.MethodGet, "/metrics", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "trace-123", resp.Header.Get(middleware.RequestIDHeader))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `scenic_tour_tours_total{outcome="fastest_only"} 1`)
}
